package raster

import "github.com/olivierh59500/cellfield/field"

// Snapshot runs a fresh scheduler for ticks ticks on a new surface. When the surface
// cannot be created the scheduler is left disabled and the error returned. A disabled
// scheduler (reduced motion) leaves the bare background.
func Snapshot(cfg field.Config, opts field.Options, ticks int) (*Surface, *field.Scheduler, error) {
	sched := field.NewScheduler(cfg, opts)
	surface, err := New(int(opts.Width), int(opts.Height), opts.Scale, cfg.Background)
	if err != nil {
		sched.Start(false)
		return nil, sched, err
	}
	surface.Clear()
	if sched.Start(true) == field.Running {
		sched.Step(surface, ticks)
	}
	return surface, sched, nil
}
