package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ytget/catalog-browser/internal/catalog"
	"github.com/ytget/catalog-browser/internal/config"
	"github.com/ytget/catalog-browser/internal/filter"
	"github.com/ytget/catalog-browser/internal/localization"
	"github.com/ytget/catalog-browser/internal/logger"
	"github.com/ytget/catalog-browser/internal/model"
)

var ErrNoKeys = errors.New("at least one key is required")

// runtimeEnv holds what every command needs
type runtimeEnv struct {
	cfg     *config.AppConfig
	log     *logrus.Logger
	closer  io.Closer
	catalog *catalog.Catalog
}

// Close releases the log file
func (e *runtimeEnv) Close() {
	if err := e.closer.Close(); err != nil {
		e.log.WithError(err).Warn("Failed to close log output")
	}
}

// setup loads configuration, logging and the catalog
func setup(c *cli.Context) (*runtimeEnv, error) {
	cfg, err := config.LoadAppConfig(c.String("env-file"))
	if err != nil {
		return nil, err
	}
	if path := c.String("catalog"); path != "" {
		cfg.CatalogPath = path
	}

	log, closer, err := logger.New(cfg.Logger())
	if err != nil {
		return nil, err
	}
	logger.SetDefault(log)

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"videos":     cat.Len(),
		"categories": len(cat.Categories()),
	}).Debug("Catalog loaded")

	return &runtimeEnv{cfg: cfg, log: log, closer: closer, catalog: cat}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func parseLanguage(s string) (model.Language, error) {
	lang := model.Language(strings.ToLower(strings.TrimSpace(s)))
	if !lang.IsValid() {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	return lang, nil
}

// parseCategory maps "" and "all" to all categories and anything else to a
// tag
func parseCategory(s string) model.Category {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, model.AllCategories().String()) {
		return model.AllCategories()
	}
	return model.TagCategory(s)
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "List catalog videos matching a query and category",
		ArgsUsage: "[query]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "case-insensitive text to find in titles and descriptions",
			},
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "category tag, or all",
			},
		},
		Action: runSearch,
	}
}

func runSearch(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.Close()

	query := c.String("query")
	if query == "" {
		query = strings.Join(c.Args().Slice(), " ")
	}
	criteria := filter.Criteria{Query: query, Category: parseCategory(c.String("category"))}

	videos := filter.Apply(env.catalog.Videos(), criteria, model.NewPlaylist())
	env.log.WithFields(logrus.Fields{
		"query":    criteria.Query,
		"category": criteria.Category.String(),
		"matches":  len(videos),
	}).Debug("Search finished")

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE")
	for _, v := range videos {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\n", v.ID, v.Title, v.Category, v.Price)
	}
	return w.Flush()
}

func translateCommand() *cli.Command {
	return &cli.Command{
		Name:      "translate",
		Usage:     "Resolve translation keys, falling back to English",
		ArgsUsage: "key [key...]",
		Action:    runTranslate,
	}
}

func runTranslate(c *cli.Context) error {
	if c.NArg() == 0 {
		return ErrNoKeys
	}

	lang := model.DefaultLanguage
	if s := c.String("lang"); s != "" {
		l, err := parseLanguage(s)
		if err != nil {
			return err
		}
		lang = l
	}

	translator, err := localization.NewTranslator()
	if err != nil {
		return err
	}
	for _, key := range c.Args().Slice() {
		fmt.Fprintln(c.App.Writer, translator.Resolve(key, lang))
	}
	return nil
}
