package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/bloxown/bo3-camera/engine/camera"
)

// Renderer queues primitives for one frame and draws them through raylib
// from the camera's point of view.
type Renderer struct {
	width, height int
	queue         []Primitive
	uiqueue       []UIElement
	cubeModel     rl.Model

	GridSlices  int32
	GridSpacing float32
}

type Primitive struct {
	Position mgl32.Vec3
	Size     mgl32.Vec3
	Color    mgl32.Vec4
	Wire     bool
}

type UIElement struct {
	X, Y    int32
	Color   mgl32.Vec4
	Content string
}

// NewRenderer must be called after rl.InitWindow.
func NewRenderer(width, height int) *Renderer {
	cubeMesh := rl.GenMeshCube(1.0, 1.0, 1.0)
	return &Renderer{
		width:       width,
		height:      height,
		cubeModel:   rl.LoadModelFromMesh(cubeMesh),
		GridSlices:  20,
		GridSpacing: 1.0,
	}
}

// Aspect is the window's width over height.
func (r *Renderer) Aspect() float32 {
	return float32(r.width) / float32(r.height)
}

func (r *Renderer) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(51, 26, 26, 255))
	r.queue = r.queue[:0]
	r.uiqueue = r.uiqueue[:0]
}

func (r *Renderer) PushCube(pos, size mgl32.Vec3, color mgl32.Vec4) {
	r.queue = append(r.queue, Primitive{Position: pos, Size: size, Color: color})
}

func (r *Renderer) PushWireCube(pos, size mgl32.Vec3, color mgl32.Vec4) {
	r.queue = append(r.queue, Primitive{Position: pos, Size: size, Color: color, Wire: true})
}

func (r *Renderer) PushUIText(x, y int32, color mgl32.Vec4, content string) {
	r.uiqueue = append(r.uiqueue, UIElement{X: x, Y: y, Color: color, Content: content})
}

func (r *Renderer) GetPrimCount() int {
	return len(r.queue)
}

// helper to convert mgl32.Vec4 color to Raylib Color
func vec4ToColor(c mgl32.Vec4) rl.Color {
	return rl.NewColor(
		uint8(mgl32.Clamp(c[0], 0, 1)*255),
		uint8(mgl32.Clamp(c[1], 0, 1)*255),
		uint8(mgl32.Clamp(c[2], 0, 1)*255),
		uint8(mgl32.Clamp(c[3], 0, 1)*255),
	)
}

func vec3ToRaylib(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// ToRaylib converts the camera to a raylib perspective camera using its
// position, look target (position + front), up vector and zoom as FOV.
func ToRaylib(cam *camera.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3ToRaylib(cam.Position()),
		Target:     vec3ToRaylib(cam.Position().Add(cam.Front())),
		Up:         vec3ToRaylib(cam.Up()),
		Fovy:       cam.Zoom(),
		Projection: rl.CameraPerspective,
	}
}

// EndFrame draws the queued primitives with cam's view and presents.
func (r *Renderer) EndFrame(cam *camera.Camera) {
	rl.BeginMode3D(ToRaylib(cam))

	if r.GridSlices > 0 {
		rl.DrawGrid(r.GridSlices, r.GridSpacing)
	}
	for _, prim := range r.queue {
		col := vec4ToColor(prim.Color)
		pos := vec3ToRaylib(prim.Position)
		if prim.Wire {
			rl.DrawCubeWires(pos, prim.Size.X(), prim.Size.Y(), prim.Size.Z(), col)
			continue
		}
		rl.DrawModelEx(r.cubeModel,
			pos,
			rl.Vector3{X: 0, Y: 1, Z: 0}, // rotation axis
			0.0,                          // rotation angle
			vec3ToRaylib(prim.Size),      // scale
			col)
	}

	rl.EndMode3D()

	for _, ui := range r.uiqueue {
		rl.DrawText(ui.Content, ui.X, ui.Y, 20, vec4ToColor(ui.Color))
	}

	rl.EndDrawing()

	r.queue = r.queue[:0]
	r.uiqueue = r.uiqueue[:0]
}

func (r *Renderer) Destroy() {
	rl.UnloadModel(r.cubeModel)
}
