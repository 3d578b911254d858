package plot

// View is the read-only part of a Surface needed to project data into
// screen space.
type View interface {
	XLim() (min, max float64)
	Transform(x, y float64) (sx, sy float64)
}

// Scene holds the artists that make up the drawing.
type Scene interface {
	Add(a Artist)
	Remove(a Artist) bool
}

// Surface is the host plot: current view, scene membership and redraw.
type Surface interface {
	View
	Scene
	YLim() (min, max float64)
	Redraw()
}

// Artist is a drawable element of the scene.
type Artist interface {
	Visible() bool
	SetVisible(visible bool)
}
