package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minepkg/webcraft/internals/cmdlog"
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/minepkg/webcraft/internals/utils"
	"github.com/minepkg/webcraft/pkg/webcraft"
	"github.com/spf13/cobra"
)

// named times of day, in ticks
var dayTimes = map[string]int64{
	"day":      1000,
	"noon":     6000,
	"night":    13000,
	"midnight": 18000,
}

func init() {
	worldCmd := &cobra.Command{
		Use:     "world",
		Aliases: []string{"worlds", "w"},
		Short:   "Reads and changes world settings",
	}

	weatherRunner := &worldWeatherRunner{}
	weatherCmd := commands.New(&cobra.Command{
		Use:       "weather <world> [clear|rain|thunder]",
		Short:     "Shows or sets the weather",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"clear", "rain", "thunder"},
	}, weatherRunner)
	weatherCmd.Flags().IntVar(&weatherRunner.duration, "duration", 6000, "weather duration in ticks")

	worldCmd.AddCommand(
		commands.New(&cobra.Command{
			Use:   "list",
			Short: "Lists all worlds",
			Args:  cobra.NoArgs,
		}, &worldListRunner{}).Command,
		commands.New(&cobra.Command{
			Use:   "info <world>",
			Short: "Shows details of a world",
			Args:  cobra.ExactArgs(1),
		}, &worldInfoRunner{}).Command,
		commands.New(&cobra.Command{
			Use:   "save <world>",
			Short: "Saves a world to disk",
			Args:  cobra.ExactArgs(1),
		}, &worldSaveRunner{}).Command,
		weatherCmd.Command,
		commands.New(&cobra.Command{
			Use:   "difficulty <world> [peaceful|easy|normal|hard]",
			Short: "Shows or sets the difficulty",
			Args:  cobra.RangeArgs(1, 2),
		}, &worldDifficultyRunner{}).Command,
		commands.New(&cobra.Command{
			Use:   "time <world> [ticks|day|noon|night|midnight]",
			Short: "Shows or sets the time of day",
			Args:  cobra.RangeArgs(1, 2),
		}, &worldTimeRunner{}).Command,
	)

	rootCmd.AddCommand(worldCmd)
}

type worldListRunner struct{}

func (w *worldListRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}
	worlds, err := client.Worlds.GetAllWorlds(contextOf(cmd))
	if err != nil {
		return err
	}
	return render(cmd, worlds, func(l *cmdlog.Logger) {
		for _, name := range worlds.Worlds {
			l.Info(name)
		}
	})
}

type worldInfoRunner struct{}

func (w *worldInfoRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}
	world, err := client.Worlds.GetWorldInfo(contextOf(cmd), args[0])
	if err != nil {
		return err
	}
	return render(cmd, world, func(l *cmdlog.Logger) {
		l.Headline(world.Name)
		l.Fields(
			cmdlog.Field{Key: "Time", Value: utils.MinecraftTime(int64(world.Time))},
			cmdlog.Field{Key: "Difficulty", Value: world.Difficulty},
			cmdlog.Field{Key: "Hardcore", Value: yesNo(world.Hardcore)},
			cmdlog.Field{Key: "PvP", Value: yesNo(world.PVP)},
			cmdlog.Field{Key: "Animals", Value: yesNo(world.SpawnAnimals)},
			cmdlog.Field{Key: "Monsters", Value: yesNo(world.SpawnMonsters)},
			cmdlog.Field{Key: "Seed", Value: world.Seed},
		)
	})
}

type worldSaveRunner struct{}

func (w *worldSaveRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}
	var res *webcraft.SuccessResponse
	err = root.spin("Saving "+args[0], func() (err error) {
		res, err = client.Worlds.SaveWorld(contextOf(cmd), args[0])
		return err
	})
	if err != nil {
		return err
	}
	return render(cmd, res, func(l *cmdlog.Logger) { l.Success("Saved " + args[0]) })
}

type worldWeatherRunner struct {
	duration int
}

func (w *worldWeatherRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}
	world := args[0]

	if len(args) == 1 {
		weather, err := client.Worlds.GetWeather(contextOf(cmd), world)
		if err != nil {
			return err
		}
		return render(cmd, weather, func(l *cmdlog.Logger) {
			l.Infof("%s: %s for %d more ticks", world, weather.Weather, weather.Duration)
		})
	}

	weather, err := webcraft.ParseWeather(args[1])
	if err != nil {
		return err
	}
	res, err := client.Worlds.SetWeather(contextOf(cmd), world, weather, w.duration)
	if err != nil {
		return err
	}
	return render(cmd, res, func(l *cmdlog.Logger) {
		l.Success(fmt.Sprintf("Weather in %s is now %s", world, weather))
	})
}

type worldDifficultyRunner struct{}

func (w *worldDifficultyRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}
	world := args[0]

	if len(args) == 1 {
		difficulty, err := client.Worlds.GetDifficulty(contextOf(cmd), world)
		if err != nil {
			return err
		}
		return render(cmd, difficulty, func(l *cmdlog.Logger) {
			l.Infof("%s: %s", world, difficulty.Difficulty)
		})
	}

	difficulty, err := webcraft.ParseDifficulty(args[1])
	if err != nil {
		return err
	}
	res, err := client.Worlds.SetDifficulty(contextOf(cmd), world, difficulty)
	if err != nil {
		return err
	}
	return render(cmd, res, func(l *cmdlog.Logger) {
		l.Success(fmt.Sprintf("Difficulty of %s is now %s", world, difficulty))
	})
}

type worldTimeRunner struct{}

func parseTicks(s string) (int64, error) {
	if ticks, ok := dayTimes[strings.ToLower(s)]; ok {
		return ticks, nil
	}
	ticks, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ticks < 0 {
		return 0, fmt.Errorf("invalid time %q (use ticks or one of day, noon, night, midnight)", s)
	}
	return ticks, nil
}

func (w *worldTimeRunner) RunE(cmd *cobra.Command, args []string) error {
	client, err := root.Client()
	if err != nil {
		return err
	}
	world := args[0]

	if len(args) == 1 {
		t, err := client.Worlds.GetTime(contextOf(cmd), world)
		if err != nil {
			return err
		}
		return render(cmd, t, func(l *cmdlog.Logger) {
			l.Infof("%s: %s (%d ticks)", world, utils.MinecraftTime(t.Time), t.Time)
		})
	}

	ticks, err := parseTicks(args[1])
	if err != nil {
		return err
	}
	res, err := client.Worlds.SetTime(contextOf(cmd), world, ticks)
	if err != nil {
		return err
	}
	return render(cmd, res, func(l *cmdlog.Logger) {
		l.Success(fmt.Sprintf("Time in %s is now %s", world, utils.MinecraftTime(ticks)))
	})
}
