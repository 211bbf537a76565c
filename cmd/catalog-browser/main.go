package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/urfave/cli/v2"

	"github.com/ytget/catalog-browser/internal/config"
	"github.com/ytget/catalog-browser/internal/localization"
	"github.com/ytget/catalog-browser/internal/session"
	"github.com/ytget/catalog-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppName        = "Catalog Browser"
	DefaultEnvFile = ".env"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "catalog-browser",
		Usage:   "Browse a video catalog with search, categories and a personal playlist",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: DefaultEnvFile,
				Usage: "load environment variables from `FILE` when it exists",
			},
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "read the catalog from a JSON `FILE` instead of the bundled one",
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "interface language (en, ru, pt)",
			},
		},
		Action: runGUI,
		Commands: []*cli.Command{
			searchCommand(),
			translateCommand(),
		},
	}
}

// runGUI opens the catalog window
func runGUI(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.Close()

	fyneApp := app.NewWithID(env.cfg.AppID)
	settings := config.NewSettings(config.NewPreferencesStorage(fyneApp.Preferences()), env.log)

	translator, err := localization.NewTranslator()
	if err != nil {
		return err
	}

	sess, err := session.New(session.Options{
		Catalog:     env.catalog,
		Settings:    settings,
		Translator:  translator,
		QuietPeriod: env.cfg.SearchDebounce,
		Logger:      env.log,
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	if lang := c.String("lang"); lang != "" {
		l, err := parseLanguage(lang)
		if err != nil {
			return err
		}
		sess.SetLanguage(l)
	}

	env.log.WithField("version", version).Info("Starting catalog browser")

	window := fyneApp.NewWindow(AppName)
	window.Resize(ui.DesktopWindowSize)
	ui.NewRootUI(window, fyneApp, sess, env.log)

	window.ShowAndRun()
	return nil
}
