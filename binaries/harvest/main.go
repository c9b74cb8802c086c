package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/twitter/harvest/common/clock"
	"github.com/twitter/harvest/common/endpoints"
	harvesterrors "github.com/twitter/harvest/common/errors"
	"github.com/twitter/harvest/common/log/hooks"
	"github.com/twitter/harvest/common/stats"
	"github.com/twitter/harvest/config"
	"github.com/twitter/harvest/env"
	"github.com/twitter/harvest/scheduler"
)

// Runs the harvest scheduler against a configured runtime until interrupted.
func main() {
	log.AddHook(hooks.NewContextHook())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newHarvestCmd()
	err := cmd.root.ExecuteContext(ctx)
	if err != nil {
		log.Error(err)
	}
	stop()
	os.Exit(int(harvesterrors.GetExitCode(err)))
}

type harvestCmd struct {
	root *cobra.Command

	depth    int
	minRAM   float64
	target   string
	deplete  bool
	config   string
	logLevel string
	httpAddr string

	// newEnv and clk are swapped out in tests.
	newEnv func(c *config.Configs, clk clock.Clock) (env.Environment, error)
	clk    clock.Clock
}

func newHarvestCmd() *harvestCmd {
	c := &harvestCmd{newEnv: createEnv}
	c.root = &cobra.Command{
		Use:           "harvest",
		Short:         "harvest schedules four-stage batches against every reachable target",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.run,
	}
	flags := c.root.Flags()
	flags.IntVarP(&c.depth, "depth", "d", scheduler.DefaultDepth, "How many hops from the control node to scan")
	flags.Float64VarP(&c.minRAM, "min_ram", "r", scheduler.DefaultMinCapacity, "Smallest host capacity worth using, never below 4")
	flags.StringVar(&c.target, "target", "", "Only schedule against this node")
	flags.BoolVar(&c.deplete, "deplete", false, "Drain --target to zero reserve and exit")
	flags.StringVar(&c.config, "config", "local.memory", "Config file (.yaml/.yml/.json) or built-in config name")
	flags.StringVar(&c.logLevel, "log_level", "info", "Log everything at this level and above (error|info|debug)")
	flags.StringVar(&c.httpAddr, "http_addr", "", "Admin endpoint address, overrides the config")
	return c
}

func createEnv(c *config.Configs, clk clock.Clock) (env.Environment, error) {
	return c.Env.Create(clk)
}

func (c *harvestCmd) run(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(c.logLevel)
	if err != nil {
		return harvesterrors.NewError(err, harvesterrors.UsageExitCode)
	}
	log.SetLevel(level)

	if c.deplete && c.target == "" {
		return harvesterrors.NewErrorf(harvesterrors.UsageExitCode, "--deplete requires --target")
	}

	cfg, err := config.Load(c.config)
	if err != nil {
		return harvesterrors.NewError(err, harvesterrors.ConfigFailureExitCode)
	}
	schedCfg, err := cfg.Scheduler.CreateSchedulerConfig()
	if err != nil {
		return harvesterrors.NewError(err, harvesterrors.ConfigFailureExitCode)
	}
	if flags := cmd.Flags(); flags.Changed("depth") || schedCfg.Depth == 0 {
		schedCfg.Depth = c.depth
	}
	if flags := cmd.Flags(); flags.Changed("min_ram") || schedCfg.MinCapacity == 0 {
		schedCfg.MinCapacity = c.minRAM
	}
	if c.target != "" {
		schedCfg.Target = c.target
	}
	addr := cfg.Stats.HTTPAddr
	if c.httpAddr != "" {
		addr = c.httpAddr
	}

	clk := c.clk
	if clk == nil {
		clk = clock.NewRealClock()
	}
	schedCfg.Clock = clk
	e, err := c.newEnv(cfg, clk)
	if err != nil {
		return harvesterrors.NewError(err, harvesterrors.EnvFailureExitCode)
	}
	if schedCfg.Target != "" && !e.Exists(schedCfg.Target) {
		return harvesterrors.NewErrorf(harvesterrors.TargetMissingExitCode, "target %s does not exist", schedCfg.Target)
	}

	stat := stats.DefaultStatsReceiver()
	s := scheduler.New(e, schedCfg, stat)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	adminErr := make(chan error, 1)
	if addr != "" {
		admin := endpoints.NewAdminServer(addr, stat, func() interface{} { return s.Status() })
		go func() { adminErr <- admin.Serve(ctx) }()
	}

	done := make(chan error, 1)
	go func() {
		if c.deplete {
			done <- s.Deplete(ctx, schedCfg.Target)
			return
		}
		done <- s.Run(ctx)
	}()

	select {
	case err := <-adminErr:
		cancel()
		<-done
		if err != nil {
			return harvesterrors.NewError(err, harvesterrors.AdminServerFailureExitCode)
		}
		return nil
	case err := <-done:
		return schedulerExit(ctx, err, c.deplete)
	}
}

// schedulerExit maps the scheduler's return to the process result. Interrupts are a clean exit.
func schedulerExit(ctx context.Context, err error, deplete bool) error {
	if err == nil || ctx.Err() != nil {
		log.Info("harvest stopped")
		return nil
	}
	if deplete {
		return harvesterrors.NewError(err, harvesterrors.DepleteFailureExitCode)
	}
	return err
}
