package usecase

import (
	"context"

	"presubuild/internal/adapter/export"
	"presubuild/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// PDFFile is a rendered quote ready to be downloaded.
type PDFFile struct {
	FileName string
	Content  []byte
}

// WhatsAppMessage is the text shared with the client and its wa.me link.
type WhatsAppMessage struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

//go:generate mockgen -source=export_usecase.go -destination=../adapter/http/handlers/mocks/mock_export_usecase.go -package=mocks

// IExportUseCase renders saved budgets. Exports read the stored budget and
// the current settings; nothing is written.
type IExportUseCase interface {
	BudgetPDF(ctx context.Context, id string) (PDFFile, error)
	BudgetWhatsApp(ctx context.Context, id string) (WhatsAppMessage, error)
	BudgetsXLSX(ctx context.Context) ([]byte, error)
}

type ExportUseCase struct {
	budgets      *BudgetUseCase
	settingsRepo interfaces.ISettingsRepository
	log          *zap.Logger
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(budgets *BudgetUseCase, settingsRepo interfaces.ISettingsRepository, log *zap.Logger) *ExportUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExportUseCase{budgets: budgets, settingsRepo: settingsRepo, log: log.Named("export")}
}

func (u *ExportUseCase) BudgetPDF(ctx context.Context, id string) (PDFFile, error) {
	b, err := u.budgets.Get(ctx, id)
	if err != nil {
		return PDFFile{}, err
	}
	s, err := loadSettings(ctx, u.settingsRepo)
	if err != nil {
		return PDFFile{}, err
	}
	content, err := export.RenderPDF(b, s)
	if err != nil {
		u.log.Error("render pdf failed", zap.String("id", b.ID), zap.Error(err))
		return PDFFile{}, err
	}
	return PDFFile{FileName: export.PDFFileName(b), Content: content}, nil
}

func (u *ExportUseCase) BudgetWhatsApp(ctx context.Context, id string) (WhatsAppMessage, error) {
	b, err := u.budgets.Get(ctx, id)
	if err != nil {
		return WhatsAppMessage{}, err
	}
	s, err := loadSettings(ctx, u.settingsRepo)
	if err != nil {
		return WhatsAppMessage{}, err
	}
	text := export.RenderWhatsAppText(b, s)
	return WhatsAppMessage{Text: text, Link: export.WhatsAppLink(b.Client.Phone, text)}, nil
}

// BudgetsXLSX exports the whole history, newest first.
func (u *ExportUseCase) BudgetsXLSX(ctx context.Context) ([]byte, error) {
	budgets, err := u.budgets.List(ctx, BudgetFilter{})
	if err != nil {
		return nil, err
	}
	s, err := loadSettings(ctx, u.settingsRepo)
	if err != nil {
		return nil, err
	}
	out, err := export.RenderBudgetsXLSX(budgets, s)
	if err != nil {
		u.log.Error("render workbook failed", zap.Int("budgets", len(budgets)), zap.Error(err))
		return nil, err
	}
	return out, nil
}
