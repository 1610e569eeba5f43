package batch

// PickBuffer holds, per pixel, the identifier of the topmost pickable
// primitive of a batch. It is the read-back side of primitive-indexed picking.
type PickBuffer struct {
	width  int
	height int
	frame  uint64
	ids    []ID
}

// NewPickBuffer allocates an empty buffer.
func NewPickBuffer(width, height int) *PickBuffer {
	pb := &PickBuffer{}
	pb.resize(width, height)
	return pb
}

func (pb *PickBuffer) resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pb.width, pb.height = width, height
	n := width * height
	if cap(pb.ids) < n {
		pb.ids = make([]ID, n)
		return
	}
	pb.ids = pb.ids[:n]
	for i := range pb.ids {
		pb.ids[i] = NoID
	}
}

// Rasterize repaints the buffer from the batch in dispatch order. Primitives
// without an identifier are transparent to picking.
func (pb *PickBuffer) Rasterize(b *Batch, width, height int) {
	pb.resize(width, height)
	pb.frame = b.Frame()
	for _, p := range b.Sorted() {
		if !p.ID.Valid() {
			continue
		}
		id := p.ID
		p.Cover(pb.width, pb.height, func(x, y int) {
			pb.ids[y*pb.width+x] = id
		})
	}
}

// At returns the identifier rendered at (x, y), or NoID.
func (pb *PickBuffer) At(x, y int) ID {
	if pb == nil || x < 0 || y < 0 || x >= pb.width || y >= pb.height {
		return NoID
	}
	return pb.ids[y*pb.width+x]
}

// Frame returns the batch frame the buffer was rasterized from.
func (pb *PickBuffer) Frame() uint64 {
	return pb.frame
}

// Size returns the buffer dimensions.
func (pb *PickBuffer) Size() (int, int) {
	return pb.width, pb.height
}
