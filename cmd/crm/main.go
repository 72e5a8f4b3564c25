// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command crm is a contact manager built on fnx.
//
//	crm serve                      run the HTTP API
//	crm add --name .. --email ..   create a contact
//	crm list [--city ..]           list contacts
//	crm show ID                    print one contact
//	crm set-city ID CITY           move a contact
//	crm delete ID                  remove a contact
//	crm import FILE.yaml           bulk import
//	crm check-order                validate an order draft
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"code.hybscloud.com/fnx"
	"code.hybscloud.com/fnx/internal/crm"
	"code.hybscloud.com/fnx/internal/crm/httpapi"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool

	cfg    crm.Config
	logger *zap.Logger
	store  *crm.Store
	env    crm.Env
)

var rootCmd = &cobra.Command{
	Use:           "crm",
	Short:         "A small contact manager",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = crm.LoadConfig(configPath); err != nil {
			return err
		}
		if logger, err = crm.NewLogger(cfg.Logging, verbose); err != nil {
			return err
		}
		if cmd.Name() == "check-order" {
			return nil
		}
		if store, err = crm.OpenStore(cmd.Context(), cfg.Database, logger); err != nil {
			return err
		}
		env = crm.NewEnv(store, logger, cfg.UndoDepth)
		return nil
	},
}

// release closes the store and flushes the logger after every command,
// including failed ones.
func release() {
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
		store = nil
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gin.SetMode(gin.ReleaseMode)
		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           httpapi.NewRouter(env),
			ReadHeaderTimeout: 10 * time.Second,
		}
		errc := make(chan error, 1)
		go func() { errc <- srv.ListenAndServe() }()
		logger.Info("listening", zap.String("addr", cfg.Addr))

		select {
		case err := <-errc:
			return err
		case <-cmd.Context().Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

var addInput crm.Contact

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a contact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(cmd, crm.CreateContact(addInput).Run(cmd.Context(), env))
	},
}

var listFilter crm.Filter

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := crm.ListContacts(listFilter).Run(cmd.Context(), env).Get()
		if err != nil {
			return err
		}
		for _, c := range cs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Address.Geo.City)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print one contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(cmd, crm.GetContact(args[0]).Run(cmd.Context(), env))
	},
}

var setCityCmd = &cobra.Command{
	Use:   "set-city ID CITY",
	Short: "Change the city of a contact",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := crm.PatchContact(args[0], crm.Patch{City: fnx.Some(args[1])}).Run(cmd.Context(), env).Get()
		if err != nil {
			return err
		}
		for _, change := range out.Changes {
			fmt.Fprintln(cmd.OutOrStdout(), change)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Remove a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return crm.DeleteContact(args[0]).Run(cmd.Context(), env).Err()
	},
}

var importOpts crm.ImportOptions

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import contacts from a YAML list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		records, err := crm.DecodeContacts(f)
		if err != nil {
			return err
		}
		if importOpts.Workers == 0 {
			importOpts.Workers = cfg.ImportWorkers
		}
		stats, err := crm.ImportContacts(records, importOpts).Run(cmd.Context(), env).Get()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "saved %d, rejected %d\n", stats.Saved, stats.Invalid)
		for _, p := range stats.Problems {
			fmt.Fprintln(w, "  "+p)
		}
		return nil
	},
}

var orderDraft crm.OrderDraft

var checkOrderCmd = &cobra.Command{
	Use:   "check-order",
	Short: "Validate an order draft",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res := crm.OrderValidator().Apply(orderDraft)
		if res.IsValid() {
			fmt.Fprintln(cmd.OutOrStdout(), "order is valid")
			return nil
		}
		return errors.New(strings.Join(res.Errors(), "\n"))
	},
}

func printResult[A any](cmd *cobra.Command, r fnx.Result[A]) error {
	v, err := r.Get()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	cobra.OnFinalize(release)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "crm.yaml", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	addCmd.Flags().StringVar(&addInput.Name, "name", "", "full name")
	addCmd.Flags().StringVar(&addInput.Email, "email", "", "email address")
	addCmd.Flags().StringVar(&addInput.Phone, "phone", "", "phone number in E.164 form")
	addCmd.Flags().StringVar(&addInput.Company, "company", "", "company")
	addCmd.Flags().StringVar(&addInput.Address.Street, "street", "", "street address")
	addCmd.Flags().StringVar(&addInput.Address.Geo.City, "city", "", "city")
	addCmd.Flags().StringVar(&addInput.Address.Geo.Country, "country", "", "ISO 3166 alpha-2 country code")

	listCmd.Flags().StringVar(&listFilter.City, "city", "", "only contacts in this city")
	listCmd.Flags().StringVarP(&listFilter.Query, "query", "q", "", "match name or email")
	listCmd.Flags().IntVar(&listFilter.Offset, "offset", 0, "skip this many matches")
	listCmd.Flags().IntVar(&listFilter.Limit, "limit", 0, "show at most this many")

	importCmd.Flags().IntVar(&importOpts.Workers, "workers", 0, "parallel validators")
	importCmd.Flags().BoolVar(&importOpts.Atomic, "atomic", false, "store all records or none")

	checkOrderCmd.Flags().StringVar(&orderDraft.CustomerID, "customer", "", "customer ID")
	checkOrderCmd.Flags().Float64Var(&orderDraft.Total, "total", 0, "order total")
	checkOrderCmd.Flags().StringVar(&orderDraft.Currency, "currency", "", "ISO 4217 currency code")

	rootCmd.AddCommand(serveCmd, addCmd, listCmd, showCmd, setCityCmd, deleteCmd, importCmd, checkOrderCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "crm:", err)
		stop()
		os.Exit(1)
	}
}
