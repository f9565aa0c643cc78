package sheetsclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-plan-sync/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// os valores são gravados como informados, sem interpretação de fórmulas
const valueInputOption = "RAW"

type ValueUpdate struct {
	Range string
	Value any
}

type Client interface {
	ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]any, error)
	UpdateCell(ctx context.Context, spreadsheetID, cell string, value any) error
	BatchUpdate(ctx context.Context, spreadsheetID string, updates []ValueUpdate) (int64, error)
}

type SheetsClient struct {
	service *sheets.Service
}

// NewClient autentica com a service account configurada
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	if cfg.GoogleSheets.ServiceAccountKey == "" {
		return nil, errors.New("chave da service account do Google não configurada")
	}

	jwtConfig, err := google.JWTConfigFromJSON([]byte(cfg.GoogleSheets.ServiceAccountKey), sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a chave da service account: %w", err)
	}

	httpClient := oauth2.NewClient(ctx, jwtConfig.TokenSource(ctx))

	client, err := NewClientWithOptions(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}

	return client, nil
}

// NewClientWithOptions permite apontar o client para outro endpoint
func NewClientWithOptions(ctx context.Context, opts ...option.ClientOption) (*SheetsClient, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o serviço do Google Sheets: %w", err)
	}

	return &SheetsClient{service: service}, nil
}

func (c *SheetsClient) ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]any, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o intervalo %s: %w", readRange, err)
	}

	logrus.WithFields(logrus.Fields{
		"range": readRange,
		"rows":  len(resp.Values),
	}).Debug("google sheets: intervalo lido")

	return resp.Values, nil
}

func (c *SheetsClient) UpdateCell(ctx context.Context, spreadsheetID, cell string, value any) error {
	valueRange := &sheets.ValueRange{Values: [][]any{{value}}}

	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, cell, valueRange).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao atualizar a célula %s: %w", cell, err)
	}

	return nil
}

// BatchUpdate grava todas as células em uma única chamada e devolve
// quantas células foram alteradas
func (c *SheetsClient) BatchUpdate(ctx context.Context, spreadsheetID string, updates []ValueUpdate) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	data := make([]*sheets.ValueRange, 0, len(updates))
	for _, update := range updates {
		data = append(data, &sheets.ValueRange{
			Range:  update.Range,
			Values: [][]any{{update.Value}},
		})
	}

	request := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: valueInputOption,
		Data:             data,
	}

	resp, err := c.service.Spreadsheets.Values.BatchUpdate(spreadsheetID, request).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("erro ao gravar %d células: %w", len(updates), err)
	}

	return resp.TotalUpdatedCells, nil
}
