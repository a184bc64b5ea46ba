package bufobj_test

import (
	"fmt"

	"github.com/gogpu/bufobj"
	"github.com/gogpu/bufobj/backend/native"
)

func ExampleNew() {
	dev := native.NewDevice()

	verts := []bufobj.Vec3{{0, 1, 0}, {-1, -1, 0}, {1, -1, 0}}
	buf, err := bufobj.New(dev, verts, bufobj.UsageStaticDraw, bufobj.TargetArray)
	if err != nil {
		fmt.Println("create:", err)
		return
	}
	defer buf.Release()

	fmt.Println(buf.Components(), buf.ScalarKind(), buf.Len())
	// Output: 3 Float 3
}

func ExampleBuffer_Update() {
	dev := native.NewDevice()

	indices := []uint16{0, 1, 2, 2, 3, 0}
	buf, err := bufobj.New(dev, indices, bufobj.UsageDynamicDraw, bufobj.TargetElementArray)
	if err != nil {
		fmt.Println("create:", err)
		return
	}
	defer buf.Release()

	// Replace the second triangle in place.
	if err := buf.UpdateBytesAt([]uint16{1, 3, 0}, 6, 6); err != nil {
		fmt.Println("update:", err)
		return
	}

	fmt.Println(buf.Len(), buf.SizeBytes())
	// Output: 6 12
}

func ExampleNewCount() {
	dev := native.NewDevice()

	// One oversized scratch slice reused across uploads; only the first
	// two elements are valid this frame.
	scratch := make([]bufobj.Vec2, 64)
	scratch[0] = bufobj.Vec2{X: 1}
	scratch[1] = bufobj.Vec2{Y: 1}

	buf, err := bufobj.NewCount(dev, scratch, 2, bufobj.UsageStreamDraw, bufobj.TargetArray)
	if err != nil {
		fmt.Println("create:", err)
		return
	}
	defer buf.Release()

	fmt.Println(buf.Len())
	// Output: 2
}
