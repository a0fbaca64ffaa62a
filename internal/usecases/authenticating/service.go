package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/retail-backoffice-api/internal/config"
	"github.com/vfg2006/retail-backoffice-api/internal/domain"
	"github.com/vfg2006/retail-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/retail-backoffice-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// Role atribuído a usuários criados sem role explícito (funcionário)
const defaultRoleID = 3

type Authenticator interface {
	Authenticate(email, password string) (*domain.Session, error)
	LoginUser(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.UpdateUserRequest) error
	DeleteUser(userID int) error
	ListUser() ([]*domain.User, error)
	GetUserProfile(userID int) (*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func handleEmail(s string) string {
	return utils.NormalizeEmail(s)
}

// Authenticate valida o par email/senha e devolve a projeção de sessão do
// usuário. Email desconhecido e senha incorreta produzem o mesmo erro para
// não revelar quais contas existem.
func (s *Service) Authenticate(email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas")
	}

	if !user.Active {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Credenciais inválidas")
	}

	return &domain.Session{
		UserID:   user.ID,
		Name:     user.Name,
		Lastname: user.Lastname,
		Email:    user.Email,
		RoleID:   user.RoleID,
		RoleName: user.RoleName,
	}, nil
}

// LoginUser autentica e emite o token JWT de sessão
func (s *Service) LoginUser(email, password string) (string, error) {
	session, err := s.Authenticate(email, password)
	if err != nil {
		return "", err
	}

	token, err := generateJWT(session, s.cfg.SecretKey)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func generateJWT(session *domain.Session, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:       session.UserID,
		UserName:     session.Name,
		UserLastname: session.Lastname,
		UserEmail:    session.Email,
		UserRoleID:   session.RoleID,
		UserRoleName: session.RoleName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// CreateUser cadastra um novo usuário. O email é a chave natural: a
// pré-checagem dá a mensagem amigável e a constraint de unicidade do banco
// é o sinal autoritativo quando requisições concorrentes disputam o insert.
func (s *Service) CreateUser(user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.Lastname == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome, sobrenome e senha são obrigatórios")
	}

	user.Email = handleEmail(user.Email)

	existing, err := s.userRepo.GetUserByEmail(user.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Já existe um usuário com o mesmo email")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hashedPassword)

	if user.RoleID == 0 {
		user.RoleID = defaultRoleID
	}

	created, err := s.userRepo.CreateUser(user)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Já existe um usuário com o mesmo email")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	if created.ID == 0 {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Usuário criado sem identificador atribuído")
	}

	// Recarrega o registro para devolver o role resolvido
	stored, err := s.userRepo.GetUserByID(created.ID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário criado")
	}

	stored.PasswordHash = ""
	return stored, nil
}

// UpdateUser sobrescreve os campos mutáveis do usuário alvo
func (s *Service) UpdateUser(user *domain.UpdateUserRequest) error {
	if user.ID == 0 {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID do usuário é obrigatório")
	}

	found, err := s.userRepo.GetUserByID(user.ID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if found == nil {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, user.ID, "Usuário não encontrado")
	}

	if user.Email != nil {
		newEmail := handleEmail(*user.Email)

		// Editar mantendo o próprio email é permitido; o conflito só existe
		// quando outro usuário já possui o email de destino.
		other, err := s.userRepo.GetUserByEmail(newEmail)
		if err != nil {
			return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
		}
		if other != nil && other.ID != user.ID {
			return NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Já existe outro usuário com esse email")
		}

		found.Email = newEmail
	}

	if user.Name != nil {
		found.Name = *user.Name
	}

	if user.Lastname != nil {
		found.Lastname = *user.Lastname
	}

	if user.Active != nil {
		found.Active = *user.Active
	}

	if user.RoleID != nil {
		found.RoleID = *user.RoleID
	}

	if user.Password != nil && *user.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*user.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		found.PasswordHash = string(hashedPassword)
	} else {
		found.PasswordHash = ""
	}

	if err := s.userRepo.UpdateUser(found); err != nil {
		if repository.IsUniqueViolation(err) {
			return NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Já existe outro usuário com esse email")
		}
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao editar usuário")
	}

	return nil
}

// DeleteUser remove (logicamente) o usuário alvo
func (s *Service) DeleteUser(userID int) error {
	found, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if found == nil {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	if err := s.userRepo.DeleteUser(found); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao excluir usuário")
	}

	return nil
}

func (s *Service) ListUser() ([]*domain.User, error) {
	users, err := s.userRepo.ListUser()
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		user.PasswordHash = ""
	}

	return users, nil
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	if user == nil {
		return nil, nil
	}

	user.PasswordHash = ""
	return user, nil
}
