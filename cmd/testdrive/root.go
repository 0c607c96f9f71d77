package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/langchou/autogenesis/internal/models"
	"github.com/langchou/autogenesis/internal/physics"
)

const envPrefix = "AUTOGENESIS"

// options 命令行参数
type options struct {
	cfgFile     string
	cfg         models.VehicleConfig
	params      models.DriveParams
	maxSteps    int
	sampleEvery int
	asJSON      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{
		cfg:    models.NewVehicleConfig(),
		params: models.DefaultDriveParams(),
	}

	rootCmd := &cobra.Command{
		Use:           "testdrive",
		Short:         "Run a single AutoGenesis drive-cycle simulation",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig(cmd, opts.cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrive(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "",
		"config file (default is $HOME/.autogenesis.yml)")

	f := rootCmd.Flags()
	// 车辆配置
	f.StringVar(&opts.cfg.Type, "type", opts.cfg.Type, "vehicle type: civilian, military, hypercar")
	f.StringVar(&opts.cfg.Power, "power", opts.cfg.Power, "powertrain: gas, diesel, electric, solar")
	f.BoolVar(&opts.cfg.SixBySix, "six-by-six", false, "6x6 drive layout")
	f.Float64Var(&opts.cfg.Armor, "armor", opts.cfg.Armor, "armor level [0, 1]")
	f.Float64Var(&opts.cfg.WheelScale, "wheel-scale", opts.cfg.WheelScale, "wheel scale [0.8, 1.6]")
	f.Float64Var(&opts.cfg.Lift, "lift", opts.cfg.Lift, "suspension lift in meters [0, 0.5]")
	f.BoolVar(&opts.cfg.TacticalLights, "tactical-lights", false, "fit tactical lights")
	f.BoolVar(&opts.cfg.Sleeper, "sleeper", false, "fit sleeper kit")
	f.BoolVar(&opts.cfg.Snorkels, "snorkels", false, "fit snorkels")
	f.BoolVar(&opts.cfg.ResealTires, "reseal-tires", false, "fit resealing tires")
	f.BoolVar(&opts.cfg.PepperSpray, "pepper-spray", false, "fit roof dispenser")
	f.BoolVar(&opts.cfg.TazerHandles, "tazer-handles", false, "fit tactile deterrent door handles")

	// 仿真参数
	f.Float64Var(&opts.params.Seconds, "seconds", opts.params.Seconds, "simulated duration in seconds")
	f.Float64Var(&opts.params.DT, "dt", opts.params.DT, "integration step in seconds")
	f.StringVar(&opts.params.Terrain, "terrain", opts.params.Terrain, "terrain name (unknown names fall back to urban)")
	f.Float64Var(&opts.params.GradePct, "grade-pct", opts.params.GradePct, "road grade in percent")
	f.Float64Var(&opts.params.WindMps, "wind-mps", opts.params.WindMps, "headwind in m/s (negative for tailwind)")
	f.Float64Var(&opts.params.TargetSpeedKmh, "target-speed-kmh", opts.params.TargetSpeedKmh, "cruise target speed")
	f.StringVar(&opts.params.Mode, "mode", opts.params.Mode, "driver mode: accel, cruise, mixed")

	// 输出
	f.IntVar(&opts.maxSteps, "max-steps", 20000, "upper bound on seconds/dt (0 disables)")
	f.IntVar(&opts.sampleEvery, "sample-every", 20, "print every Nth telemetry sample (0 hides the trace)")
	f.BoolVar(&opts.asJSON, "json", false, "print the full result as JSON")

	rootCmd.AddCommand(newTerrainsCmd())
	return rootCmd
}

// runDrive 运行仿真并输出
func runDrive(cmd *cobra.Command, opts *options) error {
	if err := opts.cfg.Validate(); err != nil {
		return err
	}
	if err := opts.params.Validate(opts.maxSteps); err != nil {
		return err
	}

	derived := physics.DeriveParameters(opts.cfg)
	trace := physics.Simulate(derived, opts.params)
	stats := physics.Analyze(opts.cfg, trace)

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"config":    opts.cfg,
			"params":    opts.params,
			"derived":   derived,
			"stats":     stats,
			"telemetry": trace,
		})
	}

	if _, ok := physics.LookupTerrain(opts.params.Terrain); !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "unknown terrain %q, using %s\n", opts.params.Terrain, physics.DefaultTerrain)
	}
	renderStats(out, opts.cfg, derived, stats)
	if opts.sampleEvery > 0 {
		renderTrace(out, trace, opts.sampleEvery)
	}
	return nil
}

// initConfig 读取配置文件和环境变量
func initConfig(cmd *cobra.Command, cfgFile string) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".autogenesis")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	}

	bindFlags(cmd, v)
}

// bindFlags 未显式设置的 flag 从配置文件或环境变量取值
// --wheel-scale 对应 AUTOGENESIS_WHEEL_SCALE
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v\n", f.Name, err)
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v\n", f.Name, err)
			}
		}
	})
}
