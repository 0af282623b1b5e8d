package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"quotation-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PartyRepository struct {
	db *sqlx.DB
}

func NewPartyRepository(db *sqlx.DB) *PartyRepository {
	return &PartyRepository{db: db}
}

// ============================================================================
// NATURAL / LEGAL PERSONS
// ============================================================================

func (r *PartyRepository) GetNaturalPersonByID(id uuid.UUID) (*models.NaturalPerson, error) {
	var person models.NaturalPerson
	query := `
		SELECT id, document_type_id, document_number, first_name, last_name,
		       phone, email, address, created_at, updated_at
		FROM natural_person WHERE id = $1`

	if err := r.db.Get(&person, query, id); err != nil {
		return nil, translateDBError(err, "natural person")
	}
	return &person, nil
}

func (r *PartyRepository) GetNaturalPersonByDocument(documentNumber string) (*models.NaturalPerson, error) {
	var person models.NaturalPerson
	query := `
		SELECT id, document_type_id, document_number, first_name, last_name,
		       phone, email, address, created_at, updated_at
		FROM natural_person WHERE document_number = $1`

	if err := r.db.Get(&person, query, documentNumber); err != nil {
		return nil, translateDBError(err, "natural person")
	}
	return &person, nil
}

func (r *PartyRepository) GetLegalPersonByID(id uuid.UUID) (*models.LegalPerson, error) {
	var person models.LegalPerson
	query := `
		SELECT id, document_type_id, document_number, legal_name, trade_name,
		       phone, email, address, created_at, updated_at
		FROM legal_person WHERE id = $1`

	if err := r.db.Get(&person, query, id); err != nil {
		return nil, translateDBError(err, "legal person")
	}
	return &person, nil
}

func (r *PartyRepository) GetLegalPersonByDocument(documentNumber string) (*models.LegalPerson, error) {
	var person models.LegalPerson
	query := `
		SELECT id, document_type_id, document_number, legal_name, trade_name,
		       phone, email, address, created_at, updated_at
		FROM legal_person WHERE document_number = $1`

	if err := r.db.Get(&person, query, documentNumber); err != nil {
		return nil, translateDBError(err, "legal person")
	}
	return &person, nil
}

// ============================================================================
// OWNERS
// ============================================================================

func (r *PartyRepository) CreateOwner(owner *models.Owner) error {
	owner.CreatedAt = time.Now()

	query := `
		INSERT INTO owner (
			id, document_type_id, document_number, full_name, phone, created_at
		) VALUES (
			:id, :document_type_id, :document_number, :full_name, :phone, :created_at
		)`

	_, err := r.db.NamedExec(query, owner)
	return translateDBError(err, "owner")
}

func (r *PartyRepository) GetOwnerByID(id uuid.UUID) (*models.Owner, error) {
	var owner models.Owner
	query := `
		SELECT id, document_type_id, document_number, full_name, phone, created_at
		FROM owner WHERE id = $1`

	if err := r.db.Get(&owner, query, id); err != nil {
		return nil, translateDBError(err, "owner")
	}
	return &owner, nil
}

func (r *PartyRepository) GetOwnerByDocument(documentNumber string) (*models.Owner, error) {
	var owner models.Owner
	query := `
		SELECT id, document_type_id, document_number, full_name, phone, created_at
		FROM owner WHERE document_number = $1`

	if err := r.db.Get(&owner, query, documentNumber); err != nil {
		return nil, translateDBError(err, "owner")
	}
	return &owner, nil
}

// ============================================================================
// CUSTOMER MEMBERSHIPS
// ============================================================================

func (r *PartyRepository) GetCustomerByID(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	query := `
		SELECT id, kind, natural_person_id, legal_person_id, created_at
		FROM customer WHERE id = $1`

	if err := r.db.Get(&customer, query, id); err != nil {
		return nil, translateDBError(err, "customer")
	}
	return &customer, nil
}

func (r *PartyRepository) getCustomerByNaturalPerson(personID uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	query := `
		SELECT id, kind, natural_person_id, legal_person_id, created_at
		FROM customer WHERE natural_person_id = $1`

	if err := r.db.Get(&customer, query, personID); err != nil {
		return nil, translateDBError(err, "customer")
	}
	return &customer, nil
}

func (r *PartyRepository) getCustomerByLegalPerson(personID uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	query := `
		SELECT id, kind, natural_person_id, legal_person_id, created_at
		FROM customer WHERE legal_person_id = $1`

	if err := r.db.Get(&customer, query, personID); err != nil {
		return nil, translateDBError(err, "customer")
	}
	return &customer, nil
}

// FindCustomerByDocument performs the polymorphic customer lookup: the
// natural-person table is tried first, then the legal-person table. A
// document number can therefore only ever resolve to one membership.
func (r *PartyRepository) FindCustomerByDocument(documentNumber string) (*models.CustomerDetail, error) {
	natural, err := r.GetNaturalPersonByDocument(documentNumber)
	if err == nil {
		customer, err := r.getCustomerByNaturalPerson(natural.ID)
		if err != nil {
			return nil, err
		}
		return &models.CustomerDetail{Customer: *customer, Natural: natural}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	legal, err := r.GetLegalPersonByDocument(documentNumber)
	if err == nil {
		customer, err := r.getCustomerByLegalPerson(legal.ID)
		if err != nil {
			return nil, err
		}
		return &models.CustomerDetail{Customer: *customer, Legal: legal}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return nil, fmt.Errorf("customer %w", ErrNotFound)
}

// GetCustomerDetail resolves a membership together with its backing person
// record, matching exhaustively on the membership kind.
func (r *PartyRepository) GetCustomerDetail(id uuid.UUID) (*models.CustomerDetail, error) {
	customer, err := r.GetCustomerByID(id)
	if err != nil {
		return nil, err
	}

	detail := &models.CustomerDetail{Customer: *customer}
	switch customer.Kind {
	case models.CustomerNatural:
		detail.Natural, err = r.GetNaturalPersonByID(*customer.NaturalPersonID)
	case models.CustomerLegal:
		detail.Legal, err = r.GetLegalPersonByID(*customer.LegalPersonID)
	default:
		return nil, fmt.Errorf("invalid customer kind: %s", customer.Kind)
	}
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// CreatePersonWithMembership persists a person record and its membership
// wrapper atomically; the wizard's CreateCustomer step must not leave a
// person without a membership behind.
func (r *PartyRepository) CreatePersonWithMembership(insertPerson func(tx *sqlx.Tx) error, customer *models.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertPerson(tx); err != nil {
		return translateDBError(err, "person")
	}

	customer.CreatedAt = time.Now()
	query := `
		INSERT INTO customer (id, kind, natural_person_id, legal_person_id, created_at)
		VALUES (:id, :kind, :natural_person_id, :legal_person_id, :created_at)`
	if _, err := tx.NamedExec(query, customer); err != nil {
		return translateDBError(err, "customer")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit person with membership: %w", err)
	}

	slog.Info("Created customer membership",
		"customer_id", customer.ID,
		"kind", customer.Kind)
	return nil
}

// InsertNaturalPersonTx and InsertLegalPersonTx are the person halves used
// with CreatePersonWithMembership.
func InsertNaturalPersonTx(person *models.NaturalPerson) func(tx *sqlx.Tx) error {
	return func(tx *sqlx.Tx) error {
		person.CreatedAt = time.Now()
		person.UpdatedAt = time.Now()
		query := `
			INSERT INTO natural_person (
				id, document_type_id, document_number, first_name, last_name,
				phone, email, address, created_at, updated_at
			) VALUES (
				:id, :document_type_id, :document_number, :first_name, :last_name,
				:phone, :email, :address, :created_at, :updated_at
			)`
		_, err := tx.NamedExec(query, person)
		return err
	}
}

func InsertLegalPersonTx(person *models.LegalPerson) func(tx *sqlx.Tx) error {
	return func(tx *sqlx.Tx) error {
		person.CreatedAt = time.Now()
		person.UpdatedAt = time.Now()
		query := `
			INSERT INTO legal_person (
				id, document_type_id, document_number, legal_name, trade_name,
				phone, email, address, created_at, updated_at
			) VALUES (
				:id, :document_type_id, :document_number, :legal_name, :trade_name,
				:phone, :email, :address, :created_at, :updated_at
			)`
		_, err := tx.NamedExec(query, person)
		return err
	}
}
