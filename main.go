package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tuannh982/setmultimap/multimap"

	log "github.com/sirupsen/logrus"
)

var backings = map[string]func(opts ...multimap.Option) *multimap.SetMultimap[string, string]{
	"hash":   multimap.NewHashSetMultimap[string, string],
	"linked": multimap.NewLinkedHashSetMultimap[string, string],
	"tree":   multimap.NewTreeSetMultimap[string, string],
}

type config struct {
	backing    string
	logLevel   string
	replace    []string
	removeKeys []string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:          "setmultimap [key=value ...]",
		Short:        "Build a set multimap from key=value pairs and print it",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cfg, args)
		},
	}
	cmd.Flags().StringVar(&cfg.backing, "backing", "linked", "bucket and key ordering: hash, linked or tree")
	cmd.Flags().StringVar(&cfg.logLevel, "log-level", "info", "log level")
	cmd.Flags().StringArrayVar(&cfg.replace, "replace", nil, "replace the values of a key, as key=v1,v2")
	cmd.Flags().StringArrayVar(&cfg.removeKeys, "remove-key", nil, "remove every value of a key")
	return cmd
}

func run(out io.Writer, cfg *config, args []string) error {
	level, err := log.ParseLevel(cfg.logLevel)
	if err != nil {
		return err
	}
	logger := log.WithFields(log.Fields{"component": "multimap", "backing": cfg.backing})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetLevel(level)

	newMultimap, ok := backings[cfg.backing]
	if !ok {
		return fmt.Errorf("unknown backing %q", cfg.backing)
	}
	mm := newMultimap(multimap.WithLogger(logger))

	for _, arg := range args {
		key, value, err := splitPair(arg)
		if err != nil {
			return err
		}
		added, err := mm.Put(key, value)
		if err != nil {
			return err
		}
		if !added {
			logger.Info("duplicate pair ignored", " key=", key, " value=", value)
		}
	}
	for _, arg := range cfg.replace {
		key, values, err := splitPair(arg)
		if err != nil {
			return err
		}
		old, err := mm.ReplaceValues(key, strings.Split(values, ","))
		if err != nil {
			return err
		}
		logger.Debug("values replaced", " key=", key, " old=", old.Entries())
	}
	for _, key := range cfg.removeKeys {
		removed := mm.RemoveAll(key)
		logger.Debug("key removed", " key=", key, " values=", removed.Entries())
	}

	it := mm.AsMap().Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "%s: %s\n", e.Key, e.Values)
	}
	_, _ = fmt.Fprintf(out, "size=%d keys=%d\n", mm.Size(), mm.KeySet().Size())
	return nil
}

func splitPair(arg string) (string, string, error) {
	key, value, found := strings.Cut(arg, "=")
	if !found {
		return "", "", fmt.Errorf("expected key=value, got %q", arg)
	}
	return key, value, nil
}
