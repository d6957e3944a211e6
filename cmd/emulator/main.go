// Command emulator runs the solar system simulation headless: it
// drives the tick loop, logs orbital positions and camera activity,
// and serves Prometheus metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/Ajayprakashk7/Solar-system-emulator/core"
	"github.com/Ajayprakashk7/Solar-system-emulator/internal/logging"
	"github.com/Ajayprakashk7/Solar-system-emulator/internal/observability"
	"github.com/Ajayprakashk7/Solar-system-emulator/model"
	"github.com/Ajayprakashk7/Solar-system-emulator/registry"
	"github.com/Ajayprakashk7/Solar-system-emulator/timectrl"
)

// poseRecorder keeps the most recent camera pose for periodic logging.
type poseRecorder struct {
	last core.Pose
}

func (p *poseRecorder) ApplyPose(pose core.Pose) { p.last = pose }

func main() {
	duration := flag.Duration("duration", 60*time.Second, "total simulation duration (0 = run until interrupted)")
	tick := flag.Duration("tick", 16*time.Millisecond, "tick interval")
	accelerated := flag.Bool("accelerated", false, "run in accelerated mode (vs real-time)")
	speed := flag.Float64("speed", 1.0, "initial user speed factor")
	catalogPath := flag.String("catalog", "", "path to a JSON body catalog (default: built-in solar system)")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	selectBody := flag.String("select", "", "name of a body to focus once the intro settles")
	logEvery := flag.Int("log-every", 60, "log a position/pose summary every N ticks")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	bodies, err := loadBodies(*catalogPath)
	if err != nil {
		log.Error(ctx, "catalog load failed", logging.String("error", err.Error()))
		os.Exit(1)
	}

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "tracing init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdownTracing, log)

	collector, err := observability.NewSimCollector(nil)
	if err != nil {
		log.Error(ctx, "metrics init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	collector.CatalogBodies.Set(float64(len(bodies)))

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Warn(ctx, "metrics server stopped", logging.String("error", err.Error()))
			}
		}()
		log.Info(ctx, "serving metrics", logging.String("addr", *metricsAddr))
	}

	store := registry.New()
	speedCtl := timectrl.NewSpeedControl(*speed)
	recorder := &poseRecorder{}
	engine := core.NewEngine(bodies, store, speedCtl, recorder, log)

	engine.Camera().OnTransition(func(from, to core.CameraState) {
		collector.RecordTransition(from.String(), to.String(), int(to))
	})

	// Resolve the optional startup selection by name.
	focusID := -1
	if *selectBody != "" {
		for _, b := range bodies {
			if b.Name == *selectBody {
				focusID = b.ID
				break
			}
		}
		if focusID < 0 {
			log.Warn(ctx, "unknown body in -select", logging.String("name", *selectBody))
		}
	}

	mode := timectrl.RealTime
	if *accelerated {
		mode = timectrl.Accelerated
	}
	tc := timectrl.NewTimeController(time.Now().UTC(), *tick, mode)

	tracer := otel.Tracer("emulator")
	tickCount := 0
	tc.AddListener(func(dt float64) {
		tickCtx, span := tracer.Start(ctx, "tick")
		start := time.Now()

		pose := engine.Tick(dt)

		collector.Ticks.Inc()
		collector.TickDuration.Observe(time.Since(start).Seconds())
		collector.SpeedFactor.Set(speedCtl.Current())
		tickCount++

		// Kick off the requested focus once input is accepted.
		if focusID >= 0 && engine.Camera().State() == core.StateFree {
			if err := engine.OnBodySelected(focusID); err != nil {
				log.Warn(tickCtx, "selection rejected", logging.String("error", err.Error()))
			}
			focusID = -1
		}

		if *logEvery > 0 && tickCount%*logEvery == 0 {
			logSummary(tickCtx, log, engine, store, pose)
		}
		span.End()
	})

	log.Info(ctx, "starting simulation",
		logging.Any("duration", *duration),
		logging.Any("tick", *tick),
		logging.Int("bodies", len(bodies)),
		logging.Float64("speed", *speed),
	)

	done := tc.Start(*duration)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-done:
	case <-sigCh:
		tc.Stop()
		<-done
	}
	log.Info(ctx, "simulation complete", logging.Int("ticks", tickCount))
}

func loadBodies(path string) ([]*model.CelestialBody, error) {
	if path == "" {
		bodies := model.DefaultCatalog()
		if err := core.ValidateCatalog(bodies); err != nil {
			return nil, fmt.Errorf("built-in catalog: %w", err)
		}
		return bodies, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return core.LoadCatalog(f)
}

func logSummary(ctx context.Context, log logging.Logger, engine *core.Engine, store *registry.PositionRegistry, pose core.Pose) {
	for _, b := range engine.Bodies() {
		if b.IsStar {
			continue
		}
		pos, err := store.Get(b.Name)
		if err != nil {
			continue
		}
		log.Debug(ctx, "body position",
			logging.String("name", b.Name),
			logging.Float64("x", pos.X),
			logging.Float64("z", pos.Z),
		)
	}
	log.Info(ctx, "camera",
		logging.String("state", engine.Camera().State().String()),
		logging.Float64("x", pose.Position.X),
		logging.Float64("y", pose.Position.Y),
		logging.Float64("z", pose.Position.Z),
	)
}
