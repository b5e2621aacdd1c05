package yars

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
)

// ZorlonCannon is the state of the cannon: it follows the Yar up and down the
// left edge until launched, then flies straight across the screen.
type ZorlonCannon struct {
	Launched bool
}

type Cannon struct {
	ecs.BasicEntity
	common.SpaceComponent
	common.RenderComponent
	Transform
	ZorlonCannon
}

// ZorlonCannonSystem owns the single cannon of the arena. Messages received
// from the mailbox are held until the next Update, so a signal sent in one
// frame is acted on in the following one regardless of system order.
type ZorlonCannonSystem struct {
	A *Arena

	spawnRequested   bool
	despawnRequested bool
	shootRequested   bool
}

func (zs *ZorlonCannonSystem) New(*ecs.World) {
	zs.Listen()
}

// Listen registers the cannon's message handlers. New calls it when the
// system joins a world.
func (zs *ZorlonCannonSystem) Listen() {
	zs.A.listen(SpawnZorlonCannonMessage{}, func(engo.Message) { zs.spawnRequested = true })
	zs.A.listen(DespawnZorlonCannonMessage{}, func(engo.Message) { zs.despawnRequested = true })
	zs.A.listen(YarDiedMessage{}, func(engo.Message) { zs.despawnRequested = true })
	zs.A.listen(YarShootMessage{}, func(engo.Message) { zs.shootRequested = true })
}

func (*ZorlonCannonSystem) Priority() int { return priorityCannon }

func (*ZorlonCannonSystem) Remove(ecs.BasicEntity) {}

func (zs *ZorlonCannonSystem) Update(dt float32) {
	zs.despawn()
	zs.spawn()
	zs.track()
	zs.shoot()
	zs.fly(dt)
	zs.leaveWorld()
	zs.collideYar()
	zs.collideQotile()
	zs.collideShield()

	if c := zs.A.Cannon; c != nil {
		zs.A.place(c.Transform, &c.SpaceComponent)
	}
}

func (zs *ZorlonCannonSystem) spawn() {
	requested := zs.spawnRequested
	zs.spawnRequested = false
	if !requested || zs.A.Yar == nil || zs.A.Cannon != nil {
		return
	}

	yar := zs.A.Yar
	cfg := zs.A.Config
	bounds := cfg.CannonBounds()

	c := &Cannon{
		BasicEntity: ecs.NewBasic(),
		Transform:   yar.Transform,
		RenderComponent: common.RenderComponent{
			Scale: engo.Point{X: cfg.ScreenScale, Y: cfg.ScreenScale},
		},
		SpaceComponent: common.SpaceComponent{Width: bounds.X(), Height: bounds.Y()},
	}
	c.Pos[0] = -cfg.ScreenWidth / 2
	if yar.Sheet != nil {
		c.Drawable = yar.Sheet.Drawable(cfg.CannonSprite)
	}
	c.RenderComponent.SetZIndex(zCannon)
	zs.A.place(c.Transform, &c.SpaceComponent)

	zs.A.Cannon = c
	zs.A.addSprite(&c.BasicEntity, &c.RenderComponent, &c.SpaceComponent)
	log.Debugf("Zorlon cannon spawned at %+v", c.Pos)
}

func (zs *ZorlonCannonSystem) despawn() {
	requested := zs.despawnRequested
	zs.despawnRequested = false
	if !requested || zs.A.Cannon == nil {
		return
	}

	c := zs.A.Cannon
	zs.A.Cannon = nil
	zs.A.removeEntity(c.BasicEntity)
	log.Debugf("Zorlon cannon despawned at %+v", c.Pos)
}

func (zs *ZorlonCannonSystem) track() {
	c := zs.A.Cannon
	if zs.A.Yar == nil || c == nil || c.Launched {
		return
	}
	c.Pos[1] = zs.A.Yar.Pos.Y()
}

func (zs *ZorlonCannonSystem) shoot() {
	requested := zs.shootRequested
	zs.shootRequested = false
	c := zs.A.Cannon
	if !requested || c == nil || c.Launched {
		return
	}
	c.Launched = true
	zs.A.dispatch(CannonLaunchedMessage{})
}

func (zs *ZorlonCannonSystem) fly(dt float32) {
	c := zs.A.Cannon
	if c == nil || !c.Launched {
		return
	}
	c.Pos[0] += zs.A.Config.CannonSpeed * dt
}

func (zs *ZorlonCannonSystem) leaveWorld() {
	c := zs.A.Cannon
	if c == nil {
		return
	}
	if IsOffscreen(c.Pos, zs.A.Config.Screen()) {
		zs.A.dispatch(DespawnZorlonCannonMessage{})
	}
}

// launched returns the cannon if it is in flight. Only a flying cannon can hit anything.
func (zs *ZorlonCannonSystem) launched() *Cannon {
	c := zs.A.Cannon
	if c == nil || !c.Launched {
		return nil
	}
	return c
}

func (zs *ZorlonCannonSystem) collideYar() {
	c := zs.launched()
	yar := zs.A.Yar
	if c == nil || yar == nil {
		return
	}
	cfg := zs.A.Config
	if IntersectRect(yar.Pos, cfg.YarBounds(), c.Pos, cfg.CannonBounds()) {
		zs.A.dispatch(YarDiedMessage{})
		zs.A.dispatch(DespawnZorlonCannonMessage{})
	}
}

func (zs *ZorlonCannonSystem) collideQotile() {
	c := zs.launched()
	q := zs.A.Qotile
	if c == nil || q == nil {
		return
	}
	cfg := zs.A.Config
	if IntersectRect(q.Pos, cfg.QotileBounds(), c.Pos, cfg.CannonBounds()) {
		zs.A.dispatch(QotileDiedMessage{})
		zs.A.dispatch(DespawnZorlonCannonMessage{})
	}
}

// collideShield damages the first block in the cannon's way. The cannon is
// spent on that block even if its neighbours overlap too.
func (zs *ZorlonCannonSystem) collideShield() {
	c := zs.launched()
	if c == nil || len(zs.A.Shields) == 0 {
		return
	}
	cfg := zs.A.Config
	for _, b := range zs.A.Shields {
		if !IntersectRect(b.Pos, cfg.ShieldBounds(), c.Pos, cfg.CannonBounds()) {
			continue
		}
		b.Health -= cfg.ShieldDamage
		zs.A.dispatch(ShieldHitMessage{Health: b.Health})
		zs.A.dispatch(DespawnZorlonCannonMessage{})
		return
	}
}
