package main

import (
	"context"
	"hotelmanager/config"
	"hotelmanager/infras/gateway"
	"hotelmanager/infras/otel"
	"hotelmanager/internal/domains/room/model"
	"hotelmanager/internal/domains/search"
	"hotelmanager/internal/views"
	"hotelmanager/shared/logger"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "browse",
		Usage: "search hotel rooms from the terminal",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "page-size",
				Usage:   "rooms per page, 0 uses SEARCH_ROOM_PAGE_SIZE",
				EnvVars: []string{"BROWSE_PAGE_SIZE"},
			},
			&cli.StringSliceFlag{
				Name:  "type",
				Usage: "start filtered to these room types",
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "initial sort key: price or type",
			},
		},
		Action: browse,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("Browser stopped")
	}
}

func browse(c *cli.Context) error {
	cfg := config.Get()

	logger.InitLoggerTo(os.Stderr)
	logger.SetLogLevel(cfg)

	ctx := c.Context

	ot := otel.New(cfg)
	defer func() {
		if err := ot.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}()

	client := gateway.New(cfg, gateway.Anonymous{}, ot)

	rooms, err := client.Rooms(ctx)
	if err != nil {
		return err
	}

	log.Debug().Int("rooms", len(rooms)).Msg("Loaded room snapshot")

	pageSize := c.Int("page-size")
	if pageSize <= 0 {
		pageSize = cfg.Search.RoomPageSize
	}

	defaults := search.Criteria{
		RoomTypes: c.StringSlice("type"),
		Sort:      search.SortKey(c.String("sort")),
		PageSize:  pageSize,
	}
	if defaults.Sort != search.SortDefault {
		defaults.Direction = search.Asc
	}

	if err := defaults.Validate(); err != nil {
		return err
	}

	controller := views.New[model.Room](rooms, defaults, time.Duration(cfg.Search.DebounceMillis)*time.Millisecond)
	console := views.NewConsole(controller, client.Rooms, os.Stdout)

	return console.Run(ctx, os.Stdin)
}
