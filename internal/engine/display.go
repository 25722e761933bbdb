package engine

// Display is the rendering collaborator. Implementations must not block the caller.
type Display interface {
	Render(view ProfileView)
	Notify(message string)
}

// NopDisplay discards everything.
type NopDisplay struct{}

func (NopDisplay) Render(ProfileView) {}
func (NopDisplay) Notify(string) {}
