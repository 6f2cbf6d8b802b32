package callback

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postCallback(t *testing.T, s *Server, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/payment/callback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func validForm() url.Values {
	return url.Values{
		"razorpay_order_id":   {"order_abc"},
		"razorpay_payment_id": {"pay_def"},
		"razorpay_signature":  {"sig_ghi"},
	}
}

func TestCallbackPostDeliversResult(t *testing.T) {
	s := New("127.0.0.1:0")
	w := postCallback(t, s, validForm())
	require.Equal(t, http.StatusOK, w.Code)

	select {
	case result := <-s.results:
		assert.Equal(t, "order_abc", result.RazorpayOrderID)
		assert.Equal(t, "pay_def", result.RazorpayPaymentID)
		assert.Equal(t, "sig_ghi", result.RazorpaySignature)
	default:
		t.Fatal("expected a result on the channel")
	}
}

func TestCallbackGetDeliversResult(t *testing.T) {
	s := New("127.0.0.1:0")
	req := httptest.NewRequest(http.MethodGet, "/payment/callback?"+validForm().Encode(), nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	result := <-s.results
	assert.Equal(t, "order_abc", result.RazorpayOrderID)
}

func TestCallbackRejectsMissingParameters(t *testing.T) {
	s := New("127.0.0.1:0")
	form := validForm()
	form.Del("razorpay_signature")

	w := postCallback(t, s, form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, s.results)
}

func TestCallbackDuplicateIsDropped(t *testing.T) {
	s := New("127.0.0.1:0")
	require.Equal(t, http.StatusOK, postCallback(t, s, validForm()).Code)

	dup := validForm()
	dup.Set("razorpay_payment_id", "pay_second")
	require.Equal(t, http.StatusOK, postCallback(t, s, dup).Code)

	result := <-s.results
	assert.Equal(t, "pay_def", result.RazorpayPaymentID, "the first callback wins")
	assert.Empty(t, s.results)
}

func TestWaitReturnsCancelledOnContextDone(t *testing.T) {
	s := New("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Wait(ctx)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestWaitRoundTrip(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	s := New(addr)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type waitOutcome struct {
		result Result
		err    error
	}
	done := make(chan waitOutcome, 1)
	go func() {
		result, err := s.Wait(ctx)
		done <- waitOutcome{result, err}
	}()

	// The listener comes up asynchronously; retry the POST until it lands.
	require.Eventually(t, func() bool {
		resp, err := http.PostForm("http://"+addr+"/payment/callback", validForm())
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 20*time.Millisecond)

	outcome := <-done
	require.NoError(t, outcome.err)
	assert.Equal(t, "order_abc", outcome.result.RazorpayOrderID)
	assert.Equal(t, "sig_ghi", outcome.result.RazorpaySignature)
}
