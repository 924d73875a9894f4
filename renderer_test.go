package glpoints

import (
	"testing"

	"github.com/soypat/glgl/math/ms3"
)

func newTestRenderer(t *testing.T) (*PointRenderer, *mockContext) {
	t.Helper()
	ctx := newMockContext()
	r, err := NewPointRenderer(ctx)
	if err != nil {
		t.Fatal(err)
	}
	ctx.reset()
	return r, ctx
}

func TestNewPointRendererAcquiresResources(t *testing.T) {
	ctx := newMockContext()
	_, err := NewPointRenderer(ctx)
	if err != nil {
		t.Fatal(err)
	}
	compiles, creates := 0, 0
	for _, op := range ctx.ops {
		switch op {
		case "CompileProgram":
			compiles++
		case "CreateBuffer":
			creates++
		}
	}
	if compiles != 1 {
		t.Errorf("%d CompileProgram calls at construction, want 1", compiles)
	}
	if creates != 2 {
		t.Errorf("%d CreateBuffer calls at construction, want 2", creates)
	}
}

func TestNewPointRendererMissingSlot(t *testing.T) {
	for _, name := range []string{"position", "color", "size", "proj", "view"} {
		ctx := newMockContext()
		ctx.missing[name] = true
		if _, err := NewPointRenderer(ctx); err == nil {
			t.Errorf("construction succeeded with %q missing from program", name)
		}
	}
}

func TestRenderEmptyShortCircuit(t *testing.T) {
	r, ctx := newTestRenderer(t)
	cam := &mockCamera{}
	if r.NeedsRendering() {
		t.Fatal("fresh renderer needs rendering")
	}
	if err := r.Render(0, cam); err != nil {
		t.Fatal(err)
	}
	if len(ctx.ops) != 0 {
		t.Errorf("empty render made device calls: %v", ctx.ops)
	}
	if len(cam.uploads) != 0 {
		t.Error("empty render invoked the camera")
	}
}

func TestRenderProtocol(t *testing.T) {
	r, ctx := newTestRenderer(t)
	cam := &mockCamera{}
	r.AddPoint(ms3.Vec{X: 1}, ms3.Vec{X: 1})
	r.AddPoint(ms3.Vec{Y: 1}, ms3.Vec{Y: 1})
	r.AddPoint(ms3.Vec{Z: 1}, ms3.Vec{Z: 1})
	if !r.NeedsRendering() {
		t.Fatal("renderer with queued points does not need rendering")
	}
	if err := r.Render(2, cam); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"UseProgram[1]",
		"EnableAttrib[0]",
		"EnableAttrib[1]",
		"EnableAttrib[2]",
		"SetUniformMat4[0]",
		"SetUniformMat4[1]",
		"BufferData[1 18 0]", // interleaved channel: 3 points, 6 floats each
		"BufferData[2 3 0]",  // size channel: one float per point
		"AttribPointer[0 1 3 6 0]",
		"AttribPointer[1 1 3 6 3]",
		"AttribPointer[2 2 1 0 0]",
		"SetPointSize[1]",
		"DrawPoints[0 3]",
		"DisableAttrib[0]",
		"DisableAttrib[1]",
		"DisableAttrib[2]",
	}
	if len(ctx.ops) != len(want) {
		t.Fatalf("protocol transcript:\n%v\nwant:\n%v", ctx.ops, want)
	}
	for i := range want {
		if ctx.ops[i] != want[i] {
			t.Errorf("op %d = %s, want %s", i, ctx.ops[i], want[i])
		}
	}
	if len(cam.uploads) != 1 || cam.uploads[0] != 2 {
		t.Errorf("camera uploads %v, want pass 2 exactly once", cam.uploads)
	}
	if r.NeedsRendering() || !r.batch.IsEmpty() {
		t.Error("batch not drained by successful render")
	}
}

func TestRenderUsesCurrentDefaultSize(t *testing.T) {
	r, ctx := newTestRenderer(t)
	r.SetPointSize(6)
	r.AddPoint(ms3.Vec{}, ms3.Vec{})
	if err := r.Render(0, &mockCamera{}); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, op := range ctx.ops {
		if op == "SetPointSize[6]" {
			found = true
		}
	}
	if !found {
		t.Errorf("device point size not set from default size, ops: %v", ctx.ops)
	}
}

func TestRenderTwiceIdempotent(t *testing.T) {
	r, ctx := newTestRenderer(t)
	cam := &mockCamera{}
	r.AddPoint(ms3.Vec{}, ms3.Vec{})
	if err := r.Render(0, cam); err != nil {
		t.Fatal(err)
	}
	ctx.reset()
	if err := r.Render(0, cam); err != nil {
		t.Fatal(err)
	}
	if len(ctx.ops) != 0 {
		t.Errorf("second render with no new points made device calls: %v", ctx.ops)
	}
	if !r.batch.IsEmpty() {
		t.Error("batch not empty after consecutive renders")
	}
}

func TestRenderDeviceErrorKeepsBatch(t *testing.T) {
	r, ctx := newTestRenderer(t)
	cam := &mockCamera{}
	r.AddPoint(ms3.Vec{}, ms3.Vec{})
	r.AddPoint(ms3.Vec{X: 1}, ms3.Vec{})
	ctx.failOn = "DrawPoints"
	if err := r.Render(0, cam); err == nil {
		t.Fatal("device error not surfaced by render")
	}
	if r.batch.Len() != 2 {
		t.Fatalf("failed render drained the batch: %d points left, want 2", r.batch.Len())
	}
	// The device recovers; the same points draw on the next frame.
	ctx.failOn = ""
	ctx.reset()
	if err := r.Render(0, cam); err != nil {
		t.Fatal(err)
	}
	drew := false
	for _, op := range ctx.ops {
		if op == "DrawPoints[0 2]" {
			drew = true
		}
	}
	if !drew {
		t.Errorf("retry frame did not draw the kept points, ops: %v", ctx.ops)
	}
	if !r.batch.IsEmpty() {
		t.Error("batch not drained by the successful retry")
	}
}

func TestRenderCameraErrorAborts(t *testing.T) {
	r, ctx := newTestRenderer(t)
	cam := &mockCamera{fail: true}
	r.AddPoint(ms3.Vec{}, ms3.Vec{})
	if err := r.Render(0, cam); err == nil {
		t.Fatal("camera error not surfaced by render")
	}
	for _, op := range ctx.ops {
		if op == "DrawPoints[0 1]" {
			t.Fatal("draw issued after camera failure")
		}
	}
	if r.batch.IsEmpty() {
		t.Error("failed render drained the batch")
	}
}

func TestRendererRelease(t *testing.T) {
	r, ctx := newTestRenderer(t)
	r.Release()
	deletesBuf, deletesProg := 0, 0
	for _, op := range ctx.ops {
		switch op {
		case "DeleteBuffer[1]", "DeleteBuffer[2]":
			deletesBuf++
		case "DeleteProgram[1]":
			deletesProg++
		}
	}
	if deletesBuf != 2 {
		t.Errorf("%d buffer deletions on release, want 2", deletesBuf)
	}
	if deletesProg != 1 {
		t.Errorf("%d program deletions on release, want 1", deletesProg)
	}
}
