package yars

// SpawnZorlonCannonMessage asks for a cannon to appear at the left edge, level with the Yar.
type SpawnZorlonCannonMessage struct{}

func (SpawnZorlonCannonMessage) Type() string { return "SpawnZorlonCannonMessage" }

type DespawnZorlonCannonMessage struct{}

func (DespawnZorlonCannonMessage) Type() string { return "DespawnZorlonCannonMessage" }

// YarShootMessage is sent when the player presses fire.
type YarShootMessage struct{}

func (YarShootMessage) Type() string { return "YarShootMessage" }

type YarDiedMessage struct{}

func (YarDiedMessage) Type() string { return "YarDiedMessage" }

type QotileDiedMessage struct{}

func (QotileDiedMessage) Type() string { return "QotileDiedMessage" }

// ShieldHitMessage reports a shield block struck by the cannon.
type ShieldHitMessage struct {
	Health int
}

func (ShieldHitMessage) Type() string { return "ShieldHitMessage" }

// CannonLaunchedMessage is sent once per cannon, when it leaves the left edge.
type CannonLaunchedMessage struct{}

func (CannonLaunchedMessage) Type() string { return "CannonLaunchedMessage" }

type GameOverMessage struct {
	Score int
}

func (GameOverMessage) Type() string { return "GameOverMessage" }
