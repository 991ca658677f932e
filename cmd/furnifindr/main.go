// Package main запускает терминальный магазин FurniFindr.
package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mmeshcher/furnifindr/internal/catalog"
	"github.com/mmeshcher/furnifindr/internal/config"
	"github.com/mmeshcher/furnifindr/internal/coupon"
	"github.com/mmeshcher/furnifindr/internal/pricing"
	"github.com/mmeshcher/furnifindr/internal/session"
	"github.com/mmeshcher/furnifindr/internal/tui"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		// Логгер ещё не создан: путь к файлу логов — часть конфигурации.
		panic(err)
	}

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()

	resolver, err := coupon.ParseTable(cfg.Coupons)
	if err != nil {
		sugar.Fatalw("coupon table error", "error", err.Error())
	}

	store := catalog.SeedStore()
	engine := pricing.NewEngine(cfg.TaxRateDecimal(), cfg.ShippingFeeDecimal())

	sess := session.NewDemo(logger, store, engine, resolver)

	sugar.Infow("starting furnifindr",
		"products", len(store.Products()),
		"tax_rate", cfg.TaxRate,
		"shipping_fee", cfg.ShippingFee,
	)

	p := tea.NewProgram(tui.NewModel(sess, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}

	sugar.Info("furnifindr stopped")
}

// newLogger создаёт production-логгер, пишущий в файл: стандартный вывод
// занят интерфейсом.
func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
