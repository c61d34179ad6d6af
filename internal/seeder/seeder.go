package seeder

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/sampledata/internal/config"
	"github.com/Lumos-Labs-HQ/sampledata/internal/export"
	"github.com/Lumos-Labs-HQ/sampledata/internal/model"
	"github.com/Lumos-Labs-HQ/sampledata/internal/report"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

const (
	StageCustomers     = "customer"
	StageAccounts      = "account"
	StageTransactions  = "transaction"
	StageDailyBalances = "daily_balance"
	StageFxRates       = "fx_rate"
)

type Seeder struct {
	config    *config.Config
	generator *DataGenerator
	graph     *DependencyGraph
	exporter  *export.Exporter
	seed      uint64
	out       io.Writer
}

func NewSeeder(cfg *config.Config) (*Seeder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	reference, err := cfg.ReferenceTime()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Seeder{
		config:    cfg,
		generator: NewDataGenerator(NewSource(seed), cfg.Defects, reference),
		graph:     NewDependencyGraph(),
		exporter:  export.NewExporter(cfg.OutputDir),
		seed:      seed,
		out:       color.Output,
	}
	s.registerStages()

	return s, nil
}

// SetOutput redirects all progress messages.
func (s *Seeder) SetOutput(w io.Writer) {
	s.out = w
	s.exporter.SetOutput(w)
}

func (s *Seeder) Seed() uint64 {
	return s.seed
}

func (s *Seeder) registerStages() {
	g := s.generator
	counts := s.config.Counts

	s.graph.AddStage(&Stage{
		Name: StageCustomers,
		Run: func(ctx context.Context, ds *Dataset) error {
			s.progress("Generating %s customers...", humanize.Comma(int64(max(counts.Customers, 0))))
			ds.Customers = g.Customers(counts.Customers)
			return nil
		},
	})
	s.graph.AddStage(&Stage{
		Name:         StageAccounts,
		Dependencies: []string{StageCustomers},
		Run: func(ctx context.Context, ds *Dataset) error {
			n := AccountCount(len(ds.Customers), counts.AccountsPerCustomer)
			s.progress("Generating %s accounts...", humanize.Comma(int64(n)))
			ds.Accounts = g.Accounts(ds.Customers, counts.AccountsPerCustomer)
			return nil
		},
	})
	s.graph.AddStage(&Stage{
		Name:         StageTransactions,
		Dependencies: []string{StageAccounts},
		Run: func(ctx context.Context, ds *Dataset) error {
			n := len(ds.Accounts) * max(counts.TransactionsPerAccount, 0)
			s.progress("Generating %s transactions...", humanize.Comma(int64(n)))
			ds.Transactions = g.Transactions(ds.Accounts, counts.TransactionsPerAccount)
			return nil
		},
	})
	s.graph.AddStage(&Stage{
		Name:         StageDailyBalances,
		Dependencies: []string{StageAccounts},
		Run: func(ctx context.Context, ds *Dataset) error {
			n := len(ds.Accounts) * max(counts.BalanceDays, 0)
			s.progress("Generating %s daily balance records...", humanize.Comma(int64(n)))
			ds.DailyBalances = g.DailyBalances(ds.Accounts, counts.BalanceDays)
			return nil
		},
	})
	s.graph.AddStage(&Stage{
		Name: StageFxRates,
		Run: func(ctx context.Context, ds *Dataset) error {
			s.progress("Generating %d days of FX rates...", max(counts.FxDays, 0))
			ds.FxRates = g.FxRates(counts.FxDays)
			return nil
		},
	})
}

func (s *Seeder) progress(format string, args ...interface{}) {
	color.New(color.FgCyan).Fprintf(s.out, format+"\n", args...)
}

// Generate runs every stage in dependency order and returns the in-memory
// dataset. Nothing is written.
func (s *Seeder) Generate(ctx context.Context) (*Dataset, error) {
	order, err := s.graph.BuildOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to build generation order: %w", err)
	}

	ds := &Dataset{}
	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.graph.Stage(name).Run(ctx, ds); err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", name, err)
		}
	}

	return ds, nil
}

// Tables lists the output files of ds in their fixed write order.
func Tables(ds *Dataset) []export.Table {
	return []export.Table{
		{Name: "Customers", File: "customer.csv", Columns: model.CustomerColumns, Rows: model.Records(ds.Customers)},
		{Name: "Accounts", File: "account.csv", Columns: model.AccountColumns, Rows: model.Records(ds.Accounts)},
		{Name: "Transactions", File: "transaction.csv", Columns: model.TransactionColumns, Rows: model.Records(ds.Transactions)},
		{Name: "Daily Balances", File: "daily_balance.csv", Columns: model.DailyBalanceColumns, Rows: model.Records(ds.DailyBalances)},
		{Name: "FX Rates", File: "fx_rate.csv", Columns: model.FxRateColumns, Rows: model.Records(ds.FxRates)},
	}
}

// Run generates the dataset, writes every file and the manifest, and
// returns the summary to print. Any write failure aborts the run.
func (s *Seeder) Run(ctx context.Context) (*report.Summary, error) {
	if s.config.IsPure() {
		color.New(color.FgCyan).Fprint(s.out, "\n[*] Generating pure sample data (NO INTENTIONAL DQ ISSUES)...\n\n")
	} else {
		color.New(color.FgCyan).Fprint(s.out, "\n[*] Generating sample data with intentional DQ issues...\n\n")
	}

	ds, err := s.Generate(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.config.EnsureDirectories(); err != nil {
		return nil, err
	}

	color.New(color.FgCyan).Fprint(s.out, "\n[*] Writing CSV files...\n\n")

	tables := Tables(ds)
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := s.exporter.WriteTable(t); err != nil {
			return nil, err
		}
	}

	runID := uuid.New().String()
	defects := s.defectLines()

	if s.config.WriteManifest {
		if _, err := s.exporter.WriteManifest(s.manifest(runID, tables)); err != nil {
			return nil, err
		}
	}

	outputDir := s.exporter.Dir()
	if abs, err := filepath.Abs(outputDir); err == nil {
		outputDir = abs
	}

	summary := &report.Summary{
		Pure:      s.config.IsPure(),
		OutputDir: outputDir,
		RunID:     runID,
		Seed:      s.seed,
		Defects:   defects,
	}
	for _, t := range tables {
		summary.Entities = append(summary.Entities, report.EntityCount{Label: t.Name, Rows: len(t.Rows)})
	}

	return summary, nil
}

func (s *Seeder) defectLines() []report.DefectLine {
	if s.config.IsPure() {
		return nil
	}

	tally := s.generator.Tally()
	var lines []report.DefectLine
	for _, info := range Catalog(s.config.Defects) {
		if info.Rate == 0 && tally[info.Category] == 0 {
			continue
		}
		lines = append(lines, report.DefectLine{
			Description: info.Description,
			Rate:        info.Rate,
			Injected:    tally[info.Category],
		})
	}
	return lines
}

func (s *Seeder) manifest(runID string, tables []export.Table) export.Manifest {
	m := export.Manifest{
		RunID:         runID,
		Variant:       string(s.config.Variant),
		Seed:          s.seed,
		ReferenceDate: s.config.ReferenceDate,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	for _, t := range tables {
		m.Files = append(m.Files, export.ManifestFile{
			Name:    t.File,
			Columns: t.Columns,
			Rows:    len(t.Rows),
		})
	}

	if !s.config.IsPure() {
		tally := s.generator.Tally()
		for _, info := range Catalog(s.config.Defects) {
			m.Defects = append(m.Defects, export.ManifestDefect{
				Category: string(info.Category),
				Rate:     info.Rate,
				Injected: tally[info.Category],
			})
		}
	}

	return m
}

// StageNames returns the resolved generation order, for display.
func (s *Seeder) StageNames() (string, error) {
	order, err := s.graph.BuildOrder()
	if err != nil {
		return "", err
	}
	return strings.Join(order, " → "), nil
}
