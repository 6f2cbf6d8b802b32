// Package callback receives the browser redirect leg of a Razorpay
// checkout on localhost and hands the provider parameters back to the
// waiting payment flow.
package callback

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Result carries the provider parameters needed for verification.
type Result struct {
	RazorpayOrderID   string `json:"razorpay_order_id" form:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id" form:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature" form:"razorpay_signature"`
}

// ErrCancelled is returned when the wait ends before a callback arrives.
var ErrCancelled = errors.New("payment callback wait cancelled")

type Server struct {
	addr    string
	engine  *gin.Engine
	results chan Result
}

func New(addr string) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		addr:    addr,
		engine:  gin.New(),
		results: make(chan Result, 1),
	}

	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// The checkout page may deliver the parameters as a POST body or as
	// query params on a GET redirect.
	s.engine.POST("/payment/callback", s.handleCallback)
	s.engine.GET("/payment/callback", s.handleCallback)
	return s
}

func (s *Server) handleCallback(ctx *gin.Context) {
	var result Result
	if ctx.Request.Method == http.MethodPost {
		if err := ctx.ShouldBind(&result); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid callback payload"})
			return
		}
	} else {
		result.RazorpayOrderID = ctx.Query("razorpay_order_id")
		result.RazorpayPaymentID = ctx.Query("razorpay_payment_id")
		result.RazorpaySignature = ctx.Query("razorpay_signature")
	}

	if result.RazorpayOrderID == "" || result.RazorpayPaymentID == "" || result.RazorpaySignature == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Missing callback parameters"})
		return
	}

	select {
	case s.results <- result:
	default:
		// A second callback for the same wait changes nothing.
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Payment received. You can return to the terminal."})
}

// Wait serves on the configured address until one callback arrives or ctx
// is done, then shuts the listener down.
func (s *Server) Wait(ctx context.Context) (Result, error) {
	server := &http.Server{Addr: s.addr, Handler: s.engine}

	errc := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	select {
	case result := <-s.results:
		return result, nil
	case err := <-errc:
		return Result{}, err
	case <-ctx.Done():
		return Result{}, ErrCancelled
	}
}
