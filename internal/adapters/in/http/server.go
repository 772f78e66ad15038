package http

import (
	"context"
	"errors"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/generated/servers"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalErrorPrefix = "Internal server error: "

type OrderProcessor interface {
	Handle(ctx context.Context, cmd commands.ProcessOrderCommand) (commands.ProcessOrderResult, error)
}

type OrderReader interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

type StockLevelReader interface {
	Handle(ctx context.Context, query queries.GetStockLevelQuery) (queries.GetStockLevelQueryResponse, error)
}

// Server implements servers.ServerInterface on top of the application
// command and query handlers.
type Server struct {
	processOrderHandler  OrderProcessor
	getOrderHandler      OrderReader
	getStockLevelHandler StockLevelReader
	logger               *zap.Logger
}

func NewServer(
	processOrderHandler OrderProcessor,
	getOrderHandler OrderReader,
	getStockLevelHandler StockLevelReader,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		processOrderHandler:  processOrderHandler,
		getOrderHandler:      getOrderHandler,
		getStockLevelHandler: getStockLevelHandler,
		logger:               logger.With(zap.String("component", "http")),
	}
}

// ProcessOrder handles POST /api/v1/orders/{orderId}/process.
//
//	@Summary		Process an order
//	@Description	Reserves stock, prices and schedules the order, then notifies the customer.
//	@Tags			orders
//	@Produce		json
//	@Param			orderId	path		int	true	"Order ID"
//	@Success		200		{object}	servers.ProcessOrderResult
//	@Failure		400		{object}	servers.Error
//	@Failure		500		{object}	servers.Error
//	@Router			/api/v1/orders/{orderId}/process [post]
func (s *Server) ProcessOrder(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewProcessOrderCommand(orderID)
	if err != nil {
		// Non-positive ids cannot name an order.
		return errorJSON(ctx, http.StatusBadRequest, commands.MsgOrderNotFound)
	}

	result, err := s.processOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if failure, ok := commands.AsProcessingFailure(err); ok {
			if failure.IsClientError() {
				return errorJSON(ctx, http.StatusBadRequest, failure.Message)
			}
			return errorJSON(ctx, http.StatusInternalServerError, internalErrorPrefix+failure.Message)
		}

		s.logger.Error("order processing failed", zap.Int64("orderId", orderID), zap.Error(err))
		return errorJSON(ctx, http.StatusInternalServerError, internalErrorPrefix+err.Error())
	}

	return ctx.JSON(http.StatusOK, servers.ProcessOrderResult{
		OrderId:               result.OrderID.Int64(),
		TotalCost:             result.TotalCost.Decimal().InexactFloat64(),
		EstimatedDeliveryDate: result.EstimatedDeliveryDate,
		DeliveryType:          servers.DeliveryType(result.DeliveryType.String()),
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
//
//	@Summary	Get an order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		int	true	"Order ID"
//	@Success	200		{object}	servers.Order
//	@Failure	404		{object}	servers.Error
//	@Failure	500		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId} [get]
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusNotFound, commands.MsgOrderNotFound)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusNotFound, commands.MsgOrderNotFound)
		}
		s.logger.Error("order lookup failed", zap.Int64("orderId", orderID), zap.Error(err))
		return errorJSON(ctx, http.StatusInternalServerError, internalErrorPrefix+"failed to retrieve order")
	}

	response := servers.Order{
		Id:           o.ID,
		ProductId:    o.ProductID,
		Quantity:     o.Quantity,
		DeliveryType: servers.DeliveryType(o.DeliveryType),
		Status:       servers.OrderStatus(o.Status),
		Priority:     o.Priority,
	}
	if o.CustomerEmail != "" {
		email := o.CustomerEmail
		response.CustomerEmail = &email
	}
	if o.TotalCost != nil {
		totalCost := o.TotalCost.InexactFloat64()
		response.TotalCost = &totalCost
	}
	if o.EstimatedDeliveryDate != nil {
		estimated := o.EstimatedDeliveryDate.UTC()
		response.EstimatedDeliveryDate = &estimated
	}
	if o.ProcessedAt != nil {
		processed := o.ProcessedAt.UTC()
		response.ProcessedAt = &processed
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStockLevel handles GET /api/v1/products/{productId}/stock.
//
//	@Summary	Get the stock level of a product
//	@Tags		stock
//	@Produce	json
//	@Param		productId	path		int	true	"Product ID"
//	@Success	200			{object}	servers.StockLevel
//	@Failure	404			{object}	servers.Error
//	@Failure	500			{object}	servers.Error
//	@Router		/api/v1/products/{productId}/stock [get]
func (s *Server) GetStockLevel(ctx echo.Context, productID int64) error {
	query, err := queries.NewGetStockLevelQuery(productID)
	if err != nil {
		return errorJSON(ctx, http.StatusNotFound, "Stock level not found.")
	}

	level, err := s.getStockLevelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusNotFound, "Stock level not found.")
		}
		s.logger.Error("stock lookup failed", zap.Int64("productId", productID), zap.Error(err))
		return errorJSON(ctx, http.StatusInternalServerError, internalErrorPrefix+"failed to retrieve stock level")
	}

	return ctx.JSON(http.StatusOK, servers.StockLevel{
		ProductId:   level.ProductID,
		ProductName: level.ProductName,
		Quantity:    level.Quantity,
		LastUpdated: level.LastUpdated.UTC(),
	})
}

func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, servers.Error{Code: int32(status), Message: message})
}
