package yars

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/go-gl/mathgl/mgl32"
)

// YarSystem moves the player, turns the fire button into YarShootMessage and
// summons the cannon when the Yar has eaten enough shield or touches the Qotile.
type YarSystem struct {
	A     *Arena
	Input InputSource

	died      bool
	respawnIn float32
}

func (ys *YarSystem) New(*ecs.World) {
	ys.Listen()
}

func (ys *YarSystem) Listen() {
	ys.A.listen(YarDiedMessage{}, func(engo.Message) { ys.died = true })
}

func (*YarSystem) Priority() int { return priorityYar }

func (*YarSystem) Remove(ecs.BasicEntity) {}

func (ys *YarSystem) Update(dt float32) {
	ys.handleDeath()
	ys.respawn(dt)

	yar := ys.A.Yar
	if yar == nil {
		return
	}

	var in PlayerInput
	if ys.Input != nil {
		in = ys.Input.Poll()
	}
	ys.move(yar, in, dt)
	if in.Fire {
		ys.A.dispatch(YarShootMessage{})
	}
	ys.eatShield(yar)
	ys.touchQotile(yar)

	ys.A.place(yar.Transform, &yar.SpaceComponent)
}

func (ys *YarSystem) handleDeath() {
	died := ys.died
	ys.died = false
	if !died || ys.A.Yar == nil {
		return
	}

	yar := ys.A.Yar
	ys.A.Yar = nil
	ys.A.removeEntity(yar.BasicEntity)
	ys.A.Lives--
	ys.A.Trons = 0
	log.Printf("Yar died, %d lives left", ys.A.Lives)

	if ys.A.Lives <= 0 {
		ys.A.GameOver = true
		log.Printf("Game over with score %d", ys.A.Score)
		ys.A.dispatch(GameOverMessage{Score: ys.A.Score})
		return
	}
	ys.respawnIn = ys.A.Config.RespawnDelay
}

func (ys *YarSystem) respawn(dt float32) {
	if ys.A.Yar != nil || ys.A.GameOver {
		return
	}
	ys.respawnIn -= dt
	if ys.respawnIn > 0 {
		return
	}
	ys.Spawn()
}

// Spawn places a fresh Yar on the left side of the screen.
func (ys *YarSystem) Spawn() {
	yar := ys.A.NewYar()
	ys.A.Yar = yar
	ys.A.addSprite(&yar.BasicEntity, &yar.RenderComponent, &yar.SpaceComponent)
	log.Debugf("Yar spawned at %+v", yar.Pos)
}

func (ys *YarSystem) move(yar *Yar, in PlayerInput, dt float32) {
	var dir mgl32.Vec3
	if in.Up {
		dir[1] -= 1
	}
	if in.Down {
		dir[1] += 1
	}
	if in.Left {
		dir[0] -= 1
	}
	if in.Right {
		dir[0] += 1
	}
	if dir.Len() == 0 {
		return
	}
	cfg := ys.A.Config
	yar.Pos = yar.Pos.Add(dir.Normalize().Mul(cfg.YarSpeed * dt))
	yar.Pos = clampToScreen(yar.Pos, cfg.YarBounds(), cfg.Screen())
}

// eatShield removes every block the Yar overlaps. Each block is one tron;
// enough trons bring up the cannon.
func (ys *YarSystem) eatShield(yar *Yar) {
	cfg := ys.A.Config
	eaten := ys.A.removeShields(func(b *ShieldBlock) bool {
		return IntersectRect(yar.Pos, cfg.YarBounds(), b.Pos, cfg.ShieldBounds())
	})
	if eaten > 0 {
		ys.A.Score += eaten * cfg.ShieldPoints
		ys.A.Trons += eaten
		log.Debugf("Yar ate %d shield blocks, %d trons", eaten, ys.A.Trons)
	}

	if cfg.TronsForCannon > 0 && ys.A.Trons >= cfg.TronsForCannon {
		ys.A.Trons = 0
		ys.A.dispatch(SpawnZorlonCannonMessage{})
	}
}

func (ys *YarSystem) touchQotile(yar *Yar) {
	q := ys.A.Qotile
	if q == nil || ys.A.Cannon != nil {
		return
	}
	cfg := ys.A.Config
	if IntersectRect(yar.Pos, cfg.YarBounds(), q.Pos, cfg.QotileBounds()) {
		ys.A.dispatch(SpawnZorlonCannonMessage{})
	}
}
