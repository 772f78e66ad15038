package cmd

import (
	"errors"

	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/emailgateway"
	"warehouse/internal/adapters/out/kafkagateway"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/xmlaudit"
	"warehouse/internal/core/application/notification"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"
	"warehouse/internal/pkg/clock"
	"warehouse/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived collaborators of the service. The
// inventory ledger is created once here so that every processing path shares
// the same per-product locks.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *zap.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	ledger     *services.InventoryLedger
	metrics    *metrics.ProcessingMetrics

	gateway  ports.NotificationGateway
	auditor  ports.AuditExporter
	closers  []func() error
	pipeline *commands.ProcessOrderCommandHandler
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	logger *zap.Logger,
	registry prometheus.Registerer,
) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		ledger:     services.NewInventoryLedger(),
		metrics:    metrics.NewProcessingMetrics(registry),
	}

	gateway, err := c.createNotificationGateway()
	if err != nil {
		return nil, err
	}
	c.gateway = gateway

	auditor, err := xmlaudit.NewExporter(config.AuditDir)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}
	c.auditor = auditor

	dispatcher, err := notification.NewDispatcher(c.gateway, config.DefaultCustomerEmail, logger)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}

	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	pipeline, err := commands.NewProcessOrderCommandHandler(
		f, c.ledger, dispatcher, c.auditor, clock.System{}, logger, c.metrics,
	)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}
	c.pipeline = pipeline

	return c, nil
}

func (c *CompositionRoot) createNotificationGateway() (ports.NotificationGateway, error) {
	switch c.config.NotificationGateway {
	case GatewayKafka:
		writer, err := kafkagateway.NewWriter(c.config.KafkaHost, c.config.KafkaNotificationTopic)
		if err != nil {
			return nil, err
		}
		gateway, err := kafkagateway.NewGateway(writer, c.config.KafkaNotificationTopic)
		if err != nil {
			return nil, errors.Join(err, writer.Close())
		}
		c.closers = append(c.closers, gateway.Close)
		return gateway, nil
	default:
		return emailgateway.NewGateway(c.config.EmailGatewayURL, nil)
	}
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() *commands.ProcessOrderCommandHandler {
	return c.pipeline
}

func (c *CompositionRoot) CreateProcessPendingOrderCommandHandler() (commands.ProcessPendingOrderCommandHandler, error) {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPendingOrderCommandHandler(f, c.pipeline, clock.System{})
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockLevelQueryHandler() queries.GetStockLevelQueryHandler {
	return queries.NewGetStockLevelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateProcessOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetStockLevelQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	handler, err := c.CreateProcessPendingOrderCommandHandler()
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(handler, c.config.PendingOrdersSchedule, c.logger), nil
}

// Close releases outbound connections in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	c.closers = nil
	return err
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
