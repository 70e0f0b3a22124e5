package game

// ScoreDisplay is a text surface showing the current score.
type ScoreDisplay interface {
	SetText(text string)
}

// Notifier announces a message to the player. Hosts treat an announcement as
// blocking: no frame runs until the player acknowledges it.
type Notifier interface {
	Announce(message string)
}

type nopDisplay struct{}

func (nopDisplay) SetText(string) {}

type nopNotifier struct{}

func (nopNotifier) Announce(string) {}
