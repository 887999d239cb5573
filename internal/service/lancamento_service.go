package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/shopspring/decimal"

	"pesagem/internal/auth"
	"pesagem/internal/authz"
	apperrors "pesagem/internal/errors"
	"pesagem/internal/model"
	"pesagem/internal/repository"
	"pesagem/internal/storage"
)

// LancamentoInput carries the raw form fields of a create/update request.
// Numeric fields arrive as strings and are parsed leniently: unparseable or
// negative values become zero instead of rejecting the request, which the
// dashboard relies on. The freight value is never taken from the client.
type LancamentoInput struct {
	Data            string
	HoraPostada     string
	Origem          string
	Destino         string
	InicioDescarga  string
	TerminoDescarga string
	TempoDescarga   string
	Ticket          string
	PesoReal        string
	Tarifa          string
	NF              string
	Cavalo          string
	Motorista       string
	Obs             string
	Produto         string
}

// LancamentoService orchestrates ticket CRUD, enforcing the authorization
// policy and recomputing the derived freight value on every write.
type LancamentoService interface {
	List(ctx context.Context, ident auth.Identity) ([]model.Lancamento, error)
	Get(ctx context.Context, id uint, ident auth.Identity) (*model.Lancamento, error)
	Create(ctx context.Context, in LancamentoInput, file *multipart.FileHeader, ident auth.Identity) (*model.Lancamento, error)
	Update(ctx context.Context, id uint, in LancamentoInput, file *multipart.FileHeader, ident auth.Identity) (*model.Lancamento, error)
	Delete(ctx context.Context, id uint, ident auth.Identity) error
}

type lancamentoService struct {
	repo    repository.LancamentoRepository
	uploads storage.Uploads
}

// NewLancamentoService creates a new lancamento service.
func NewLancamentoService(repo repository.LancamentoRepository, uploads storage.Uploads) LancamentoService {
	return &lancamentoService{repo: repo, uploads: uploads}
}

// List returns all lancamentos for master/auditor callers and only the
// caller's own for motoristas, most recent first.
func (s *lancamentoService) List(ctx context.Context, ident auth.Identity) ([]model.Lancamento, error) {
	if ident.Role == model.RoleMotorista {
		return s.repo.ListByMotorista(ctx, ident.NomeCompleto)
	}
	return s.repo.List(ctx)
}

// Get fails with ErrForbidden when a motorista asks for someone else's entry.
func (s *lancamentoService) Get(ctx context.Context, id uint, ident auth.Identity) (*model.Lancamento, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.Allow(ident.Role, authz.ResourceLancamentos, authz.ActionRead, l.Motorista, ident.NomeCompleto) {
		return nil, apperrors.ErrForbidden
	}
	return l, nil
}

func (s *lancamentoService) Create(ctx context.Context, in LancamentoInput, file *multipart.FileHeader, ident auth.Identity) (*model.Lancamento, error) {
	if !authz.Allow(ident.Role, authz.ResourceLancamentos, authz.ActionCreate, in.Motorista, ident.NomeCompleto) {
		return nil, apperrors.ErrForbidden
	}

	l := buildLancamento(in)

	if file != nil {
		name, err := s.storeAttachment(file)
		if err != nil {
			return nil, err
		}
		l.CaminhoNF = &name
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create lancamento: %w", err)
	}
	return l, nil
}

// Update overwrites every scalar field with the submitted payload; there are
// no partial-patch semantics. Ownership is checked against the stored record,
// so a driver cannot reassign a ticket to bypass the check. A replacement
// file is stored before the row is written and the old file removed after, so
// a crash leaves at worst an orphan file, never a dangling reference.
func (s *lancamentoService) Update(ctx context.Context, id uint, in LancamentoInput, file *multipart.FileHeader, ident auth.Identity) (*model.Lancamento, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.Allow(ident.Role, authz.ResourceLancamentos, authz.ActionUpdate, existing.Motorista, ident.NomeCompleto) {
		return nil, apperrors.ErrForbidden
	}

	updated := buildLancamento(in)
	updated.ID = existing.ID
	updated.CaminhoNF = existing.CaminhoNF

	var replaced *string
	if file != nil {
		name, err := s.storeAttachment(file)
		if err != nil {
			return nil, err
		}
		replaced = existing.CaminhoNF
		updated.CaminhoNF = &name
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update lancamento: %w", err)
	}

	if replaced != nil {
		s.uploads.Delete(*replaced)
	}
	return updated, nil
}

// Delete removes the attachment best-effort, then the record.
func (s *lancamentoService) Delete(ctx context.Context, id uint, ident auth.Identity) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.Allow(ident.Role, authz.ResourceLancamentos, authz.ActionDelete, existing.Motorista, ident.NomeCompleto) {
		return apperrors.ErrForbidden
	}

	if existing.CaminhoNF != nil {
		s.uploads.Delete(*existing.CaminhoNF)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete lancamento: %w", err)
	}
	return nil
}

func (s *lancamentoService) storeAttachment(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name, err := s.uploads.Store(file.Filename, src)
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return name, nil
}

func buildLancamento(in LancamentoInput) *model.Lancamento {
	l := &model.Lancamento{
		Data:            in.Data,
		HoraPostada:     in.HoraPostada,
		Origem:          in.Origem,
		Destino:         in.Destino,
		InicioDescarga:  in.InicioDescarga,
		TerminoDescarga: in.TerminoDescarga,
		TempoDescarga:   in.TempoDescarga,
		Ticket:          in.Ticket,
		PesoReal:        parseDecimal(in.PesoReal),
		Tarifa:          parseDecimal(in.Tarifa),
		NF:              in.NF,
		Cavalo:          in.Cavalo,
		Motorista:       in.Motorista,
		Obs:             in.Obs,
		Produto:         in.Produto,
	}
	l.RecomputeValorFrete()
	return l
}

// parseDecimal coerces unparseable or negative numeric input to zero.
func parseDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
