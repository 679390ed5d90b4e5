package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"presubuild/internal/adapter/http/handlers/mocks"
	"presubuild/internal/usecase"
	"presubuild/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func TestExportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIExportUseCase(ctrl)
	h := NewExportHandler(uc)
	h.now = func() time.Time { return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) }
	r := newTestEngine(t)
	r.GET("/v1/budgets/:id/pdf", h.DownloadBudgetPDF)
	r.GET("/v1/budgets/:id/whatsapp", h.ShareBudgetWhatsApp)
	r.GET("/v1/export.xlsx", h.ExportBudgetsXLSX)

	uc.EXPECT().BudgetPDF(gomock.Any(), "OBRA-1").Return(usecase.PDFFile{FileName: "PresuBuild_OBRA-1_ana.pdf", Content: []byte("%PDF-1.4")}, nil)
	w := serve(r, "GET", "/v1/budgets/OBRA-1/pdf", "")
	expectStatus(t, w, http.StatusOK)
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="PresuBuild_OBRA-1_ana.pdf"` {
		t.Fatalf("unexpected disposition %q", got)
	}

	uc.EXPECT().BudgetPDF(gomock.Any(), "OBRA-2").Return(usecase.PDFFile{}, usecase.ErrBudgetNotFound)
	w = serve(r, "GET", "/v1/budgets/OBRA-2/pdf", "")
	expectStatus(t, w, http.StatusNotFound)

	uc.EXPECT().BudgetWhatsApp(gomock.Any(), "OBRA-1").Return(usecase.WhatsAppMessage{Text: "hola", Link: "https://wa.me/?text=hola"}, nil)
	w = serve(r, "GET", "/v1/budgets/OBRA-1/whatsapp", "")
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"link":"https://wa.me/?text=hola"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	uc.EXPECT().BudgetsXLSX(gomock.Any()).Return([]byte("PK"), nil)
	w = serve(r, "GET", "/v1/export.xlsx", "")
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Header().Get("Content-Disposition"), "PresuBuild_Presupuestos_2026-03-02.xlsx") {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}

	uc.EXPECT().BudgetsXLSX(gomock.Any()).Return(nil, errors.New("scan failed"))
	w = serve(r, "GET", "/v1/export.xlsx", "")
	expectStatus(t, w, http.StatusInternalServerError)
}

func TestPaymentLinkHandler_CreatePaymentLink(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", usecase.ErrBudgetNotFound, http.StatusNotFound},
		{"not accepted", usecase.ErrBudgetNotAccepted, http.StatusConflict},
		{"gateway missing", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{"gateway unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway},
		{"gateway bad request", usecase.ErrPaymentGatewayBadRequest, http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentLinkUseCase(ctrl)
			r := newTestEngine(t)
			r.POST("/v1/budgets/:id/payment-link", NewPaymentLinkHandler(uc).CreatePaymentLink)

			uc.EXPECT().CreateForBudget(gomock.Any(), "OBRA-1").Return(interfaces.PaymentLink{}, tc.err)
			w := serve(r, "POST", "/v1/budgets/OBRA-1/payment-link", "")
			expectStatus(t, w, tc.want)
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLinkUseCase(ctrl)
		r := newTestEngine(t)
		r.POST("/v1/budgets/:id/payment-link", NewPaymentLinkHandler(uc).CreatePaymentLink)

		uc.EXPECT().CreateForBudget(gomock.Any(), "OBRA-1").Return(interfaces.PaymentLink{ProviderID: "pref-1", InitPoint: "https://mp.test/pref-1"}, nil)
		w := serve(r, "POST", "/v1/budgets/OBRA-1/payment-link", "")
		expectStatus(t, w, http.StatusCreated)
		if !strings.Contains(w.Body.String(), `"preferenceId":"pref-1"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	r := newTestEngine(t)
	r.GET("/v1/dashboard", NewDashboardHandler(uc).GetDashboard)

	uc.EXPECT().Summary(gomock.Any()).Return(usecase.DashboardSummary{AcceptedRevenue: 3900, PendingCount: 2}, nil)
	w := serve(r, "GET", "/v1/dashboard", "")
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"acceptedRevenue":3900`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	uc.EXPECT().Summary(gomock.Any()).Return(usecase.DashboardSummary{}, errors.New("boom"))
	w = serve(r, "GET", "/v1/dashboard", "")
	expectStatus(t, w, http.StatusInternalServerError)
}
