package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jakubknejzlik/mensagens-api/src"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "mensagens-api"
	app.Usage = "messages CRUD service"
	app.Version = "0.1.0"

	app.Commands = []cli.Command{
		startCmd,
		migrateCmd,
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var startCmd = cli.Command{
	Name:  "start",
	Usage: "start api server",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:   "p,port",
			Usage:  "Port to listen to",
			Value:  "80",
			EnvVar: "PORT",
		},
	},
	Action: func(ctx *cli.Context) error {
		port := ctx.String("port")
		if err := startServer(port); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		return nil
	},
}

var migrateCmd = cli.Command{
	Name:  "migrate",
	Usage: "create or update the messages table",
	Action: func(ctx *cli.Context) error {
		if err := automigrate(); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		return nil
	},
}

func automigrate() error {
	config, err := src.LoadConfig()
	if err != nil {
		return err
	}
	log := src.NewLogger(config.LogLevel, config.LogFormat)

	db, err := src.NewDBFromConfig(config)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info("starting migration")
	if err := src.Migrate(db); err != nil {
		return err
	}
	log.Info("migration complete")
	return nil
}

func startServer(port string) error {
	config, err := src.LoadConfig()
	if err != nil {
		return err
	}
	log := src.NewLogger(config.LogLevel, config.LogFormat)

	db, err := src.NewDBFromConfig(config)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("closing database connection")
			return
		}
		log.Info("database connection closed")
	}()

	stop, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	accessLog := log.WriterLevel(logrus.DebugLevel)
	defer accessLog.Close()

	h := &http.Server{Addr: ":" + port, Handler: src.GetHTTPHandler(db, config, log, accessLog)}

	errChan := make(chan error, 1)
	go func() {
		log.Infof("server running on http://localhost:%s/", port)
		if err := h.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-stop.Done():
		log.Info("shutting down the server...")
	case err := <-errChan:
		return err
	}

	ctx, cancelShutdown := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancelShutdown()

	if err := h.Shutdown(ctx); err != nil {
		return err
	}
	log.Info("server gracefully stopped")

	return nil
}
