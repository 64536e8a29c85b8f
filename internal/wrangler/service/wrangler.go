package service

import (
	"context"
	"maps"

	"github.com/winthrop-intelligence/phone-wrangler/internal/observability"
	"github.com/winthrop-intelligence/phone-wrangler/internal/wrangler/validator"
	apperrors "github.com/winthrop-intelligence/phone-wrangler/pkg/errors"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/logger"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/model"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/phone"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/sanitizer"
)

const parseSource = "http"

type WranglerService interface {
	Parse(ctx context.Context, req *model.ParseRequest) (*model.NumberView, error)
	Format(ctx context.Context, req *model.FormatRequest) (*model.FormatResponse, error)
	Compare(ctx context.Context, req *model.CompareRequest) (*model.CompareResponse, error)
	Pack(ctx context.Context, req *model.PackRequest) (*model.PackResponse, error)
	Presets(ctx context.Context) map[string]string
	DefaultAreaCode(ctx context.Context) *model.DefaultAreaCodeResponse
	SetDefaultAreaCode(ctx context.Context, req *model.DefaultAreaCodeRequest) (*model.DefaultAreaCodeResponse, error)
}

type wranglerService struct {
	norm      *phone.Normalizer
	validator *validator.PhoneValidator
	log       *logger.Logger
}

func NewWranglerService(norm *phone.Normalizer, validator *validator.PhoneValidator, log *logger.Logger) WranglerService {
	return &wranglerService{
		norm:      norm,
		validator: validator,
		log:       log,
	}
}

func (s *wranglerService) validate(operation string, req any) error {
	if err := s.validator.Validate(req); err != nil {
		s.log.Warn("Request validation failed",
			"operation", operation,
			"error", err,
		)
		return apperrors.Validation("Request validation failed", map[string]any{
			"errors": err,
		})
	}
	return nil
}

func (s *wranglerService) Parse(ctx context.Context, req *model.ParseRequest) (*model.NumberView, error) {
	if err := s.validate("Parse", req); err != nil {
		return nil, err
	}

	p := s.norm.Parse(sanitizer.SanitizeRaw(req.Raw))
	observability.ObserveParse(parseSource, !p.IsEmpty())

	view := model.NewNumberView(req.Raw, p)
	return &view, nil
}

func (s *wranglerService) Format(ctx context.Context, req *model.FormatRequest) (*model.FormatResponse, error) {
	if err := s.validate("Format", req); err != nil {
		return nil, err
	}

	p := s.norm.FromFields(req.ToFields())
	return &model.FormatResponse{Formatted: p.Format(req.Format)}, nil
}

func (s *wranglerService) Compare(ctx context.Context, req *model.CompareRequest) (*model.CompareResponse, error) {
	if err := s.validate("Compare", req); err != nil {
		return nil, err
	}

	left := s.norm.Parse(sanitizer.SanitizeRaw(req.Left))
	right := s.norm.Parse(sanitizer.SanitizeRaw(req.Right))

	return &model.CompareResponse{
		Equal: left.Equals(right),
		Left:  model.NewNumberView(req.Left, left),
		Right: model.NewNumberView(req.Right, right),
	}, nil
}

func (s *wranglerService) Pack(ctx context.Context, req *model.PackRequest) (*model.PackResponse, error) {
	if err := s.validate("Pack", req); err != nil {
		return nil, err
	}

	return &model.PackResponse{Packed: phone.Pack(sanitizer.SanitizeParts(req.Parts))}, nil
}

func (s *wranglerService) Presets(ctx context.Context) map[string]string {
	return maps.Clone(phone.Presets)
}

func (s *wranglerService) DefaultAreaCode(ctx context.Context) *model.DefaultAreaCodeResponse {
	resp := &model.DefaultAreaCodeResponse{}
	if code, ok := s.norm.DefaultAreaCode(); ok {
		resp.AreaCode = &code
	}
	return resp
}

func (s *wranglerService) SetDefaultAreaCode(ctx context.Context, req *model.DefaultAreaCodeRequest) (*model.DefaultAreaCodeResponse, error) {
	if err := s.validate("SetDefaultAreaCode", req); err != nil {
		return nil, err
	}

	previous, _ := s.norm.DefaultAreaCode()
	code := ""
	if req.AreaCode != nil {
		code = *req.AreaCode
	}
	s.norm.SetDefaultAreaCode(code)

	s.log.Info("Default area code changed",
		"previous", previous,
		"current", code,
	)
	return s.DefaultAreaCode(ctx), nil
}
