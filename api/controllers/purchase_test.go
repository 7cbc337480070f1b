package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	purchasesvc "github.com/maskrx/pharmacy-backend/internal/purchase"
	pkgerrors "github.com/maskrx/pharmacy-backend/pkg/errors"
	"github.com/maskrx/pharmacy-backend/pkg/types"
)

type stubPurchaseService struct {
	purchase func(ctx context.Context, req purchasesvc.Request) (*purchasesvc.Receipt, error)
}

func (s *stubPurchaseService) Purchase(ctx context.Context, req purchasesvc.Request) (*purchasesvc.Receipt, error) {
	return s.purchase(ctx, req)
}

func TestPurchaseDecodesBody(t *testing.T) {
	var gotReq purchasesvc.Request
	svc := &stubPurchaseService{
		purchase: func(ctx context.Context, req purchasesvc.Request) (*purchasesvc.Receipt, error) {
			gotReq = req
			return &purchasesvc.Receipt{UserID: 1, UserName: req.UserName, TotalAmount: 24.7, Message: "Purchase completed successfully"}, nil
		},
	}

	body := `{"user_name":"Yvonne Guerrero","items":[{"pharmacy_name":"Carepoint","mask_name":"MaskT","quantity":2}]}`
	r := httptest.NewRequest(http.MethodPost, "/purchase", strings.NewReader(body))
	w := httptest.NewRecorder()
	Purchase(svc, nil)(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Yvonne Guerrero", gotReq.UserName)
	require.Len(t, gotReq.Items, 1)
	assert.Equal(t, 2, gotReq.Items[0].Quantity)

	var envelope types.SuccessEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	payload := envelope.Data.(map[string]any)
	assert.Equal(t, 24.7, payload["total_amount"])
}

func TestPurchaseRejectsMalformedBody(t *testing.T) {
	svc := &stubPurchaseService{
		purchase: func(ctx context.Context, req purchasesvc.Request) (*purchasesvc.Receipt, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	for _, body := range []string{
		`{not json`,
		`{"items":[{"pharmacy_name":"Carepoint","mask_name":"MaskT","quantity":2}]}`,
		`{"user_name":"Yvonne","items":[]}`,
		`{"user_name":"Yvonne","items":[{"pharmacy_name":"Carepoint","mask_name":"MaskT","quantity":0}]}`,
	} {
		r := httptest.NewRequest(http.MethodPost, "/purchase", strings.NewReader(body))
		w := httptest.NewRecorder()
		Purchase(svc, nil)(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestPurchaseMapsServiceErrors(t *testing.T) {
	svc := &stubPurchaseService{
		purchase: func(ctx context.Context, req purchasesvc.Request) (*purchasesvc.Receipt, error) {
			return nil, pkgerrors.New(pkgerrors.CodeInsufficientFunds, "insufficient balance")
		},
	}

	body := `{"user_name":"Yvonne Guerrero","items":[{"pharmacy_name":"Carepoint","mask_name":"MaskT","quantity":5}]}`
	r := httptest.NewRequest(http.MethodPost, "/purchase", strings.NewReader(body))
	w := httptest.NewRecorder()
	Purchase(svc, nil)(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(pkgerrors.CodeInsufficientFunds), decodeError(t, w).Error.Code)
}
