package dnd

import "github.com/tanema/gween/ease"

const (
	// DefaultDragImageOpacity is the alpha of the visible drag image.
	DefaultDragImageOpacity = 0.7
	// DefaultGoBackDuration is how long, in seconds, a failed drag image
	// takes to return to its source.
	DefaultGoBackDuration float32 = 0.5
)

// DragImages is the default Presenter. It keeps one drag image per top zone
// under the pointer, showing the source's image while no zone is top or the
// top zone has no image of its own, and moves the source image back to the
// source when a GoBack drag fails.
//
// Image nodes live under layer while a drag is shown; the layer is made
// non-interactable so images never take part in hit testing.
type DragImages struct {
	Opacity        float64
	GoBackDuration float32
	// FadeDuration fades a newly shown image in over that many seconds.
	// Zero switches instantly.
	FadeDuration float32
	Ease         ease.TweenFunc

	layer       *Node
	source      *Node
	sourcePos   Vec2
	offset      Vec2
	images      map[*DropZone]*Node
	sourceImage *Node
	active      *Node
	fade        *TweenGroup
	goBack      *TweenGroup
}

// NewDragImages creates a presenter drawing into layer.
func NewDragImages(layer *Node) *DragImages {
	layer.Interactable = false
	return &DragImages{
		Opacity:        DefaultDragImageOpacity,
		GoBackDuration: DefaultGoBackDuration,
		Ease:           ease.OutCubic,
		layer:          layer,
	}
}

// Layer returns the node drag images are attached to.
func (d *DragImages) Layer() *Node { return d.layer }

// Active returns the drag image currently shown, or nil.
func (d *DragImages) Active() *Node { return d.active }

// Animating reports whether a go-back animation is running.
func (d *DragImages) Animating() bool { return d.goBack != nil }

// DragStart records where the source is and shows its image.
func (d *DragImages) DragStart(e Event) {
	d.cleanUp()
	if e.Source == nil {
		return
	}
	d.source = e.Source
	sx, sy := e.Source.LocalToWorld(0, 0)
	d.sourcePos = Vec2{X: sx, Y: sy}
	d.offset = Vec2{X: e.Position.X - sx, Y: e.Position.Y - sy}
	d.images = make(map[*DropZone]*Node)
	d.switchImage(nil)
	d.place(e.Position)
}

// TopChanged swaps the visible image for the new top.
func (d *DragImages) TopChanged(e Event) {
	if d.source == nil {
		return
	}
	d.switchImage(e.Top)
	d.place(e.Position)
}

// PositionChanged keeps every image under the pointer.
func (d *DragImages) PositionChanged(e Event) {
	if d.source == nil {
		return
	}
	d.place(e.Position)
}

// DragEnd removes the images, or starts the go-back animation when the drop
// failed and the source asked for it.
func (d *DragImages) DragEnd(e Event) {
	if d.source == nil {
		return
	}
	src := d.source.Drag
	if !e.Success && src != nil && src.GoBack && d.GoBackDuration > 0 {
		img := d.switchImage(nil)
		d.goBack = TweenPosition(img, d.sourcePos.X, d.sourcePos.Y, d.GoBackDuration, d.Ease)
		return
	}
	d.cleanUp()
}

// Update advances the fade and go-back animations and cleans up when the
// go-back finishes.
func (d *DragImages) Update(dt float32) {
	if d.fade != nil {
		d.fade.Update(dt)
		if d.fade.Done {
			d.fade = nil
		}
	}
	if d.goBack == nil {
		return
	}
	d.goBack.Update(dt)
	if d.goBack.Done {
		d.cleanUp()
	}
}

// switchImage hides every image and shows the one for top.
func (d *DragImages) switchImage(top *DropZone) *Node {
	if next := d.imageFor(top); next != nil && next == d.active {
		return next
	}
	d.fade = nil
	for _, img := range d.images {
		hideImage(img)
	}
	if d.sourceImage != nil {
		hideImage(d.sourceImage)
	}

	var img *Node
	if top == nil || top.Image == nil {
		img = d.sourceClone()
	} else {
		var ok bool
		if img, ok = d.images[top]; !ok {
			img = top.Image
			d.attach(img)
			d.images[top] = img
		}
	}
	img.Visible = true
	if d.FadeDuration > 0 {
		img.Alpha = 0
		d.fade = TweenAlpha(img, d.Opacity, d.FadeDuration, d.Ease)
	} else {
		img.Alpha = d.Opacity
	}
	d.active = img
	return img
}

// imageFor returns the image already created for top, or nil.
func (d *DragImages) imageFor(top *DropZone) *Node {
	if top == nil || top.Image == nil {
		return d.sourceImage
	}
	return d.images[top]
}

// sourceClone returns the source's drag image, creating it on first use.
func (d *DragImages) sourceClone() *Node {
	if d.sourceImage != nil {
		return d.sourceImage
	}
	var img *Node
	if src := d.source.Drag; src != nil && src.Image != nil {
		img = src.Image
	} else {
		img = NewBox(d.source.Name+"/drag-image", d.source.Width, d.source.Height)
	}
	d.attach(img)
	d.sourceImage = img
	return img
}

func (d *DragImages) attach(img *Node) {
	img.Interactable = false
	hideImage(img)
	d.layer.AddChild(img)
}

func hideImage(img *Node) {
	img.Visible = false
	img.Alpha = 0
}

func (d *DragImages) place(pos Vec2) {
	x, y := pos.X-d.offset.X, pos.Y-d.offset.Y
	for _, img := range d.images {
		img.SetPosition(x, y)
	}
	if d.sourceImage != nil {
		d.sourceImage.SetPosition(x, y)
	}
}

func (d *DragImages) cleanUp() {
	for _, img := range d.images {
		if img.Parent == d.layer {
			img.RemoveFromParent()
		}
	}
	if d.sourceImage != nil && d.sourceImage.Parent == d.layer {
		d.sourceImage.RemoveFromParent()
	}
	d.images = nil
	d.sourceImage = nil
	d.active = nil
	d.source = nil
	d.fade = nil
	d.goBack = nil
	d.offset = Vec2{}
	d.sourcePos = Vec2{}
}
