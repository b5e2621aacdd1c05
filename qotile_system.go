package yars

import (
	"math/rand"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
)

// QotileSystem patrols the Qotile up and down the right edge, changing
// direction at random, and rebuilds it with a fresh shield after it dies.
type QotileSystem struct {
	A    *Arena
	Rand *rand.Rand

	nextTurnIn float32
	died       bool
	respawnIn  float32
}

func (qs *QotileSystem) New(*ecs.World) {
	qs.Listen()
}

func (qs *QotileSystem) Listen() {
	qs.A.listen(QotileDiedMessage{}, func(engo.Message) { qs.died = true })
}

func (*QotileSystem) Priority() int { return priorityQotile }

func (*QotileSystem) Remove(ecs.BasicEntity) {}

func (qs *QotileSystem) Update(dt float32) {
	qs.handleDeath()
	qs.respawn(dt)

	q := qs.A.Qotile
	if q == nil {
		return
	}
	qs.think(q, dt)
	qs.move(q, dt)
	qs.A.place(q.Transform, &q.SpaceComponent)
}

func (qs *QotileSystem) handleDeath() {
	died := qs.died
	qs.died = false
	if !died || qs.A.Qotile == nil {
		return
	}

	q := qs.A.Qotile
	qs.A.Qotile = nil
	qs.A.removeEntity(q.BasicEntity)
	qs.A.Score += qs.A.Config.QotilePoints
	qs.respawnIn = qs.A.Config.RespawnDelay
	log.Printf("Qotile destroyed, score %d", qs.A.Score)
}

func (qs *QotileSystem) respawn(dt float32) {
	if qs.A.Qotile != nil || qs.A.GameOver {
		return
	}
	qs.respawnIn -= dt
	if qs.respawnIn > 0 {
		return
	}
	qs.Spawn()
}

// Spawn places a Qotile and rebuilds the shield in front of it.
func (qs *QotileSystem) Spawn() {
	q := qs.A.NewQotile()
	qs.A.Qotile = q
	qs.A.addSprite(&q.BasicEntity, &q.RenderComponent, &q.SpaceComponent)
	qs.A.ResetShield()
	qs.nextTurnIn = qs.turnInterval()
	log.Debugf("Qotile spawned at %+v", q.Pos)
}

func (qs *QotileSystem) turnInterval() float32 {
	every := qs.A.Config.QotileTurnEvery
	if qs.Rand == nil || every <= 0 {
		return every
	}
	return every/2 + qs.Rand.Float32()*every
}

func (qs *QotileSystem) think(q *Qotile, dt float32) {
	if qs.A.Config.QotileTurnEvery <= 0 {
		return
	}
	qs.nextTurnIn -= dt
	if qs.nextTurnIn > 0 {
		return
	}
	qs.nextTurnIn = qs.turnInterval()

	coin := 0
	if qs.Rand != nil {
		coin = qs.Rand.Intn(2)
	}
	if coin == 0 {
		log.Debugf("Qotile turning")
		q.Dir = -q.Dir
	}
}

// move slides the Qotile vertically and bounces it off the top and bottom.
func (qs *QotileSystem) move(q *Qotile, dt float32) {
	cfg := qs.A.Config
	maxY := (cfg.ScreenHeight - cfg.QotileBounds().Y()) / 2

	q.Pos[1] += q.Dir * cfg.QotileSpeed * dt
	if q.Pos[1] > maxY {
		q.Pos[1] = maxY
		q.Dir = -1
	}
	if q.Pos[1] < -maxY {
		q.Pos[1] = -maxY
		q.Dir = 1
	}
}
