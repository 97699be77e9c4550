package entities

// Actor is the authenticated workspace user on whose behalf an operation runs.
// Every read and write is scoped to Actor.UserID.
type Actor struct {
	UserID string
}

func (a Actor) Valid() bool {
	return a.UserID != ""
}
