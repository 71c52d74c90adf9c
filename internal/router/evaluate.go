package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DjordjeVuckovic/arith-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/arith-hunter/internal/ast"
	"github.com/DjordjeVuckovic/arith-hunter/internal/calc"
	"github.com/DjordjeVuckovic/arith-hunter/internal/dto"
	"github.com/DjordjeVuckovic/arith-hunter/internal/token"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultMaxExpressionLength = 4096
	defaultMaxBatchSize        = 100
)

type EvalRouter struct {
	e      *echo.Echo
	engine *calc.Engine

	maxExpressionLength int
	maxBatchSize        int
	batchConcurrency    int
}

type EvalRouterOption func(*EvalRouter)

func WithMaxExpressionLength(n int) EvalRouterOption {
	return func(r *EvalRouter) {
		r.maxExpressionLength = n
	}
}

func WithMaxBatchSize(n int) EvalRouterOption {
	return func(r *EvalRouter) {
		r.maxBatchSize = n
	}
}

func WithBatchConcurrency(n int) EvalRouterOption {
	return func(r *EvalRouter) {
		r.batchConcurrency = n
	}
}

func NewEvalRouter(e *echo.Echo, engine *calc.Engine, opts ...EvalRouterOption) *EvalRouter {
	r := &EvalRouter{
		e:                   e,
		engine:              engine,
		maxExpressionLength: defaultMaxExpressionLength,
		maxBatchSize:        defaultMaxBatchSize,
		batchConcurrency:    calc.DefaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *EvalRouter) Bind() {
	v1 := r.e.Group("/v1")
	v1.POST("/evaluate", r.evaluateHandler)
	v1.POST("/evaluate/batch", r.batchHandler)
	v1.POST("/parse", r.parseHandler)
	v1.GET("/tokens", r.tokensHandler)
}

// evaluateHandler godoc
// @Summary Evaluate an arithmetic expression
// @Tags evaluate
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Expression to evaluate"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /v1/evaluate [post]
func (r *EvalRouter) evaluateHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := r.validateExpression(req.Expression); err != nil {
		return err
	}

	result, err := r.engine.Evaluate(req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.EvaluateResponse{
		ID:         uuid.NewString(),
		Expression: req.Expression,
		Result:     result,
		Formatted:  calc.FormatNumber(result),
	})
}

// batchHandler godoc
// @Summary Evaluate several expressions independently
// @Tags evaluate
// @Accept json
// @Produce json
// @Param request body dto.BatchRequest true "Expressions to evaluate"
// @Success 200 {object} dto.BatchResponse
// @Failure 400 {object} map[string]string
// @Router /v1/evaluate/batch [post]
func (r *EvalRouter) batchHandler(c echo.Context) error {
	var req dto.BatchRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if len(req.Expressions) == 0 {
		return apperr.NewValidation("expressions must not be empty")
	}
	if len(req.Expressions) > r.maxBatchSize {
		return apperr.NewValidation(fmt.Sprintf("batch holds %d expressions, limit is %d", len(req.Expressions), r.maxBatchSize))
	}
	for i, expr := range req.Expressions {
		if err := r.validateExpression(expr); err != nil {
			return apperr.NewValidation(fmt.Sprintf("expression %d: %s", i, err.Error()))
		}
	}

	outcomes, err := r.engine.EvaluateBatch(c.Request().Context(), req.Expressions, r.batchConcurrency)
	if err != nil {
		return err
	}

	resp := dto.BatchResponse{
		ID:    uuid.NewString(),
		Items: make([]dto.BatchItem, len(outcomes)),
	}
	for i, o := range outcomes {
		item := dto.BatchItem{Expression: o.Expression}
		if o.Err != nil {
			kind, ok := apperr.KindOf(o.Err)
			if !ok {
				slog.Error("Batch item failed with internal error", "expression", o.Expression, "error", o.Err)
				return o.Err
			}
			item.Error = o.Err.Error()
			item.Kind = string(kind)
			resp.Failed++
		} else {
			v := o.Value
			item.Result = &v
			item.Formatted = calc.FormatNumber(v)
			resp.Succeeded++
		}
		resp.Items[i] = item
	}

	return c.JSON(http.StatusOK, resp)
}

// parseHandler godoc
// @Summary Parse an expression and return its tree
// @Tags inspect
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Expression to parse"
// @Success 200 {object} dto.ParseResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /v1/parse [post]
func (r *EvalRouter) parseHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := r.validateExpression(req.Expression); err != nil {
		return err
	}

	tree, err := r.engine.Parse(req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ParseResponse{
		Expression: req.Expression,
		Infix:      ast.String(tree),
		Tree:       ast.ToNode(tree),
	})
}

// tokensHandler godoc
// @Summary Scan an expression into tokens
// @Tags inspect
// @Produce json
// @Param expression query string true "Expression to scan"
// @Success 200 {object} dto.TokensResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /v1/tokens [get]
func (r *EvalRouter) tokensHandler(c echo.Context) error {
	expr := c.QueryParam("expression")
	if err := r.validateExpression(expr); err != nil {
		return err
	}

	tokens, err := token.Tokenize(expr)
	if err != nil {
		return err
	}

	items := make([]dto.TokenItem, 0, len(tokens))
	for _, tok := range tokens {
		items = append(items, dto.TokenItem{Type: tok.Type.String(), Value: tok.Value, Pos: tok.Pos})
	}

	return c.JSON(http.StatusOK, dto.TokensResponse{Expression: expr, Tokens: items})
}

func (r *EvalRouter) validateExpression(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return apperr.NewValidation("expression is required")
	}
	if len(expr) > r.maxExpressionLength {
		return apperr.NewValidation(fmt.Sprintf("expression exceeds %d bytes", r.maxExpressionLength))
	}
	return nil
}
