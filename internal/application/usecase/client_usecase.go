package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes. Toda mutación y lectura
// individual pasa por la guarda de propiedad: solo el vendedor que creó el
// cliente puede verlo o modificarlo.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente y le asigna el vendedor autenticado como dueño.
// Devuelve ErrClientAlreadyExists si el email ya está registrado.
func (uc *ClientUseCase) Create(sellerID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrClientAlreadyExists
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Surname:   in.Surname,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		SellerID:  sellerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente; solo quien lo creó puede verlo.
func (uc *ClientUseCase) GetByID(sellerID, id string) (*dto.ClientResponse, error) {
	client, err := uc.ownedClient(sellerID, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update actualiza un cliente del vendedor. Campos vacíos se conservan.
func (uc *ClientUseCase) Update(sellerID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.ownedClient(sellerID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		client.Name = in.Name
	}
	if in.Surname != "" {
		client.Surname = in.Surname
	}
	if in.Company != "" {
		client.Company = in.Company
	}
	if in.Email != "" && in.Email != client.Email {
		other, err := uc.repo.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrClientAlreadyExists
		}
		client.Email = in.Email
	}
	if in.Phone != "" {
		client.Phone = in.Phone
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente del vendedor.
func (uc *ClientUseCase) Delete(sellerID, id string) error {
	if _, err := uc.ownedClient(sellerID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// ListBySeller lista los clientes del vendedor autenticado.
func (uc *ClientUseCase) ListBySeller(sellerID string) ([]*dto.ClientResponse, error) {
	clients, err := uc.repo.ListBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	return toClientResponses(clients), nil
}

// ListAll lista todos los clientes (obtenerClientes).
func (uc *ClientUseCase) ListAll() ([]*dto.ClientResponse, error) {
	clients, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toClientResponses(clients), nil
}

func (uc *ClientUseCase) ownedClient(sellerID, id string) (*entity.Client, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.RequireOwner(client.SellerID, sellerID); err != nil {
		return nil, err
	}
	return client, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Surname:   c.Surname,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		SellerID:  c.SellerID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toClientResponses(clients []*entity.Client) []*dto.ClientResponse {
	out := make([]*dto.ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = toClientResponse(c)
	}
	return out
}
