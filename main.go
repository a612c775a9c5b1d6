package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/RIDSdiseno/beck-crm/analytics"
	"github.com/RIDSdiseno/beck-crm/app"
	"github.com/RIDSdiseno/beck-crm/export"
	"github.com/RIDSdiseno/beck-crm/models"
	"github.com/RIDSdiseno/beck-crm/session"
	"github.com/RIDSdiseno/beck-crm/storage"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env holds everything a command needs; built once per invocation.
type env struct {
	store   *storage.Store
	state   *app.State
	session *session.Manager
	log     *zap.Logger
	close   func()
}

func loadEnv() (*env, error) {
	// No .env file is fine; the system environment applies.
	_ = godotenv.Load()

	log, err := newLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	path := os.Getenv("BECK_STORE_PATH")
	if path == "" {
		path = ".beck-crm"
	}
	kv, err := storage.OpenBadger(path)
	if err != nil {
		return nil, err
	}

	store := storage.NewStore(kv, log)
	return &env{
		store:   store,
		state:   app.Load(store, log),
		session: session.NewManager(store, log),
		log:     log,
		close: func() {
			_ = kv.Close()
			_ = log.Sync()
		},
	}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func exportDir() string {
	if dir := os.Getenv("BECK_EXPORT_DIR"); dir != "" {
		return dir
	}
	return "."
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "beck-crm",
		Short:         "Demo CRM for firestop seal installations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newVersionCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newLoginCmd())
	root.AddCommand(newLogoutCmd())
	root.AddCommand(newWhoamiCmd())
	root.AddCommand(newDashboardCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newQuotesCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version:   %s\nBuildTime: %s\n", Version, BuildTime)
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset every collection to the demo dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()

			for _, reset := range []func() error{
				e.state.ResetSealRecords,
				e.state.ResetQuotations,
				e.state.ResetUsers,
				e.state.ResetFoamJoints,
				e.state.ResetProjects,
			} {
				if err := reset(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "demo data restored")
			return nil
		},
	}
}

func newLoginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login EMAIL",
		Short: "Sign in against the demo user list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()

			user, err := e.session.Login(args[0], password)
			if err != nil {
				// One message for every failure mode; the log keeps the detail.
				e.log.Warn("sign-in rejected", zap.Error(err))
				return fmt.Errorf("could not sign in")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()
			if err := e.session.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()

			user := e.session.Current()
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> — %s\n", user.Name, user.Email, user.Role)
			for _, route := range session.RoutesFor(user.Role) {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", route)
			}
			return nil
		},
	}
}

// requireRoute is the navigation gate: commands map to feature routes and an
// out-of-role or signed-out caller is redirected instead of served.
func requireRoute(e *env, route session.Route) (*session.AuthUser, error) {
	user := e.session.Current()
	if landed := session.Resolve(user, route); landed != route {
		return nil, fmt.Errorf("access to %s denied, redirected to %s", route, landed)
	}
	return user, nil
}

func newDashboardCmd() *cobra.Command {
	var rangeFlag, floor string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show KPI summary for the current view",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()
			if _, err := requireRoute(e, session.RouteDashboard); err != nil {
				return err
			}

			from, to := analytics.ResolvePreset(presetFromFlag(rangeFlag), time.Now())
			filtered := analytics.FilterSeals(e.state.Seals, analytics.SealFilter{
				Floor: floor, From: from, To: to,
			})
			k := analytics.ComputeSealKPIs(filtered)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Registros:            %d\n", k.Records)
			fmt.Fprintf(out, "Sellos instalados:    %d\n", k.TotalSeals)
			fmt.Fprintf(out, "Sellos ponderados:    %.1f\n", k.TotalWeighted)
			fmt.Fprintf(out, "Pisos intervenidos:   %d\n", k.DistinctFloors)
			fmt.Fprintf(out, "Selladores activos:   %d\n", k.DistinctInstallers)
			fmt.Fprintf(out, "Promedio sellos/reg:  %.1f\n", k.AvgSealsPerRecord)
			fmt.Fprintf(out, "Promedio holgura:     %.1f cm\n", k.AvgGapCM)

			fk := analytics.ComputeFoamKPIs(e.state.FoamJoints)
			fmt.Fprintf(out, "Junta espuma:         %.1f m en %d tramos (%d cuadrillas)\n",
				fk.TotalMeters, fk.Sections, fk.DistinctCrews)

			fmt.Fprintln(out, "\nSellos por piso:")
			for _, ft := range analytics.SealsPerFloor(filtered) {
				fmt.Fprintf(out, "  %-20s %.0f\n", ft.Floor, ft.Value)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rangeFlag, "range", "all", "today|week|month|all")
	cmd.Flags().StringVar(&floor, "floor", "", "filter by floor label")
	return cmd
}

func presetFromFlag(flag string) analytics.RangePreset {
	switch flag {
	case "today":
		return analytics.PresetToday
	case "week":
		return analytics.PresetThisWeek
	case "month":
		return analytics.PresetThisMonth
	default:
		return analytics.PresetWholeProject
	}
}

func newReportCmd() *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show grouped seal summaries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()
			if _, err := requireRoute(e, session.RouteReports); err != nil {
				return err
			}

			var key analytics.GroupKeyFunc
			switch by {
			case "beck":
				key = analytics.ByBeckItem
			case "sacyr":
				key = analytics.BySacyrItem
			case "floor":
				key = analytics.ByFloor
			case "installer":
				key = analytics.ByInstaller
			default:
				return fmt.Errorf("unknown grouping %q (beck|sacyr|floor|installer)", by)
			}

			groups := analytics.GroupSeals(e.state.Seals, key)
			if by == "installer" {
				analytics.SortByTotalSealsDesc(groups)
			}
			out := cmd.OutOrStdout()
			for _, g := range groups {
				fmt.Fprintf(out, "%-24s  reg=%d  sellos=%d  ponderado=%.1f  pisos=%s  último=%s\n",
					g.Key, g.Records, g.TotalSeals, g.TotalWeighted,
					g.JoinedFloors(), g.LastWorkDate.Display())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", "beck", "grouping key: beck|sacyr|floor|installer")
	return cmd
}

func newExportCmd() *cobra.Command {
	var floor, rangeFlag, search, status string
	var quotations bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current view to a spreadsheet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()

			now := time.Now()
			from, to := analytics.ResolvePreset(presetFromFlag(rangeFlag), now)

			var path string
			var count int
			if quotations {
				if _, err := requireRoute(e, session.RouteQuotations); err != nil {
					return err
				}
				filtered := analytics.FilterQuotations(e.state.Quotations, analytics.QuotationFilter{
					Status: status, From: from, To: to, Search: search,
				})
				count = len(filtered)
				path, err = export.ExportQuotations(filtered, exportDir(), now)
			} else {
				if _, err := requireRoute(e, session.RouteSealRegistry); err != nil {
					return err
				}
				filtered := analytics.FilterSeals(e.state.Seals, analytics.SealFilter{
					Floor: floor, From: from, To: to, Search: search,
				})
				count = len(filtered)
				path, err = export.ExportSeals(filtered, exportDir(), now)
			}
			if err != nil {
				return err
			}
			if path == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to export: current view is empty")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s\n", count, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&floor, "floor", "", "filter by floor label")
	cmd.Flags().StringVar(&rangeFlag, "range", "all", "today|week|month|all")
	cmd.Flags().StringVar(&search, "search", "", "free-text filter")
	cmd.Flags().StringVar(&status, "status", "", "quotation status filter")
	cmd.Flags().BoolVar(&quotations, "quotations", false, "export the quotation view instead of seals")
	return cmd
}

func newQuotesCmd() *cobra.Command {
	var status, origin, search string
	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "List quotations and their KPIs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()
			if _, err := requireRoute(e, session.RouteQuotations); err != nil {
				return err
			}

			filtered := analytics.FilterQuotations(e.state.Quotations, analytics.QuotationFilter{
				Status: status, Origin: origin, Search: search,
			})
			out := cmd.OutOrStdout()
			for _, q := range filtered {
				fmt.Fprintf(out, "%-20s  %-10s  %-24s  %s %10.0f  vence %s\n",
					q.Code, q.Status, q.Client, q.Currency, q.Amount, q.ValidUntil.Display())
			}
			k := analytics.ComputeQuotationKPIs(filtered, models.Today())
			fmt.Fprintf(out, "\ntotal=%d  monto=%.0f  tasa éxito=%.1f%%  vencen≤7d=%d\n",
				k.Total, k.TotalAmount, k.SuccessRate, k.ExpiringSoon)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&origin, "origin", "", "filter by origin")
	cmd.Flags().StringVar(&search, "search", "", "free-text filter")
	return cmd
}
