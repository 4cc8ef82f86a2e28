package scenes

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/doomerang-interp/accessors"
	"github.com/automoto/doomerang-interp/archetypes"
	"github.com/automoto/doomerang-interp/assets"
	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/host"
	"github.com/automoto/doomerang-interp/interp"
	"github.com/automoto/doomerang-interp/shared/leveldata"
	"github.com/automoto/doomerang-interp/systems"
	"github.com/automoto/doomerang-interp/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene runs the arena at a fixed step and renders it through the
// interpolation engine. The engine, the host loop and the slot tables live
// as long as the scene; the world is rebuilt on every reload.
type SandboxScene struct {
	ecs    *ecs.ECS
	engine *interp.Engine
	loop   *host.Loop
	arena  *leveldata.CollisionData
	tables *components.SlotTablesData
	once   sync.Once
	err    error
}

func NewSandboxScene() *SandboxScene {
	return &SandboxScene{}
}

func (s *SandboxScene) Update() error {
	s.once.Do(s.configure)
	if s.err != nil {
		return s.err
	}

	systems.UpdateInput(s.ecs)
	settings := systems.GetOrCreateSettings(s.ecs)
	if settings.ReloadRequested {
		settings.ReloadRequested = false
		s.reload()
		settings = systems.GetOrCreateSettings(s.ecs)
	}
	s.applySettings(settings)

	return s.loop.Update(s.step)
}

func (s *SandboxScene) step() error {
	s.ecs.Update()
	return nil
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		return
	}
	err := s.loop.Draw(func() error {
		s.ecs.Draw(screen)
		return nil
	})
	if err != nil {
		log.Printf("[sandbox] render: %v", err)
	}
}

func (s *SandboxScene) configure() {
	arena, err := assets.LoadArena()
	if err != nil {
		s.err = fmt.Errorf("sandbox: %w", err)
		return
	}
	s.arena = arena
	s.tables = accessors.NewSlotTables()

	s.engine = interp.New(cfg.Interp.Engine(cfg.Loop.TPS), cfg.Kinds)
	s.engine.DeviceReady = deviceReady
	s.engine.Allocate()
	s.engine.SetEnabled(cfg.Interp.Enabled)
	s.engine.Activate(ebitenTiming{})

	s.loop = host.NewLoop(host.Config{
		Step:             time.Second / time.Duration(cfg.Loop.TPS),
		MaxStepsPerFrame: cfg.Loop.MaxStepsPerFrame,
		MaxFrameTime:     cfg.Loop.MaxFrameTime,
	}, host.SystemClock{})
	s.loop.SetHooks(s.engine)

	// A suppressed render leaves the previous frame on screen
	ebiten.SetScreenClearedEveryFrame(false)

	s.load()
	log.Printf("[sandbox] arena %q loaded, %d solids, interpolation=%v", arena.Name, len(arena.SolidRects), s.engine.Enabled())
}

// load builds a fresh world around the arena and binds it to the engine.
func (s *SandboxScene) load() {
	world := donburi.NewWorld()
	e := ecs.NewECS(world)

	e.AddSystem(systems.UpdateLevel)
	e.AddSystem(systems.UpdateBots)
	e.AddSystem(systems.UpdateCreatures)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateProjectiles)
	e.AddSystem(systems.UpdatePickups)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateObjects)

	e.AddRenderer(archetypes.LayerDefault, systems.FollowCamera)
	e.AddRenderer(archetypes.LayerDefault, systems.DrawLevel)
	e.AddRenderer(archetypes.LayerDefault, systems.DrawEntities)
	e.AddRenderer(archetypes.LayerDefault, systems.DrawDebug)
	e.AddRenderer(archetypes.LayerDefault, systems.DrawHUD)

	s.ecs = e

	factory.CreateLevel(e, s.arena, s.tables)
	session := archetypes.Session.Spawn(e)
	components.Interp.SetValue(session, components.InterpData{Engine: s.engine, Loop: s.loop})

	accessors.Bind(s.engine, world, s.tables)
	s.engine.LoadSession()
	s.loop.Reset()
}

// reload drops the session and builds it again from the arena.
func (s *SandboxScene) reload() {
	s.engine.UnloadSession()
	s.load()
	log.Println("[sandbox] session reloaded")
}

// applySettings pushes the runtime toggles into the engine and mirrors them
// into the configuration, so a reloaded world starts from them.
func (s *SandboxScene) applySettings(settings *components.SettingsData) {
	s.engine.SetEnabled(settings.Interpolate)
	s.engine.SetTeleportDistance(settings.TeleportDistance)

	cfg.Interp.Enabled = settings.Interpolate
	cfg.Interp.TeleportDistance = settings.TeleportDistance
	cfg.Debug.Overlay = settings.Debug
}
