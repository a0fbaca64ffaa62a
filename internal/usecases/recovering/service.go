// Package recovering implementa o fluxo de recuperação de senha: gera uma
// senha temporária, persiste o novo hash e notifica o usuário por email.
package recovering

import (
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/mailer"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/retail-backoffice-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Alfabeto e tamanho da senha temporária. O gonanoid lê de
	// crypto/rand, então a senha não é previsível.
	tempPasswordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"
	tempPasswordLength   = 8

	mailSubject = "Recuperación de contraseña de tu cuenta"
)

var (
	// ErrEmailRequired indica que o email não foi informado.
	ErrEmailRequired = errors.New("o email é obrigatório")
	// ErrNotificationFailed indica que a senha foi trocada mas o email de
	// aviso não foi entregue. A troca NÃO é desfeita: a recuperação já
	// aconteceu no banco, só o usuário não foi avisado.
	ErrNotificationFailed = errors.New("falha ao enviar o email de recuperação")
)

type Recoverer interface {
	Recover(email string) (bool, error)
}

type Service struct {
	userRepo repository.UserRepository
	notifier mailer.Notifier
}

func NewService(userRepo repository.UserRepository, notifier mailer.Notifier) Recoverer {
	return &Service{
		userRepo: userRepo,
		notifier: notifier,
	}
}

// Recover troca a senha do usuário dono do email por uma temporária e envia
// exatamente uma notificação. Email desconhecido devolve false sem erro e
// sem nenhuma escrita; cabe à camada HTTP responder de forma uniforme para
// não revelar quais contas existem.
func (s *Service) Recover(email string) (bool, error) {
	if email == "" {
		return false, ErrEmailRequired
	}

	email = utils.NormalizeEmail(email)

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return false, fmt.Errorf("erro ao consultar usuário: %w", err)
	}

	if user == nil {
		logrus.WithField("email", email).Info("Recuperação de senha solicitada para email não cadastrado")
		return false, nil
	}

	tempPassword, err := gonanoid.Generate(tempPasswordAlphabet, tempPasswordLength)
	if err != nil {
		return false, fmt.Errorf("erro ao gerar senha temporária: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(user); err != nil {
		return false, fmt.Errorf("erro ao persistir nova senha: %w", err)
	}

	if err := s.notifier.Send(email, mailSubject, recoveryMailBody(tempPassword)); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Senha trocada mas o email de recuperação não foi enviado")
		return false, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	logrus.WithField("user_id", user.ID).Info("Senha temporária gerada e enviada com sucesso")
	return true, nil
}

// recoveryMailBody monta o corpo HTML com a senha temporária. O texto é em
// espanhol porque é o idioma dos usuários finais do aplicativo.
func recoveryMailBody(tempPassword string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<style>
		h1 { font-size: 24px; color: #333; }
		h3 { font-size: 18px; color: #007bff; }
		p { font-size: 16px; color: #666; }
		strong { font-weight: bold; }
	</style>
</head>
<body>
	<h1>Recuperación de contraseña</h1>
	<p>Tu contraseña temporal es: <h3>%s</h3> Te recomendamos cambiarla cuando ingreses.</p>
	<p><strong>Para acceder al aplicativo, ve al inicio de sesión e ingresa tu correo. Utiliza la contraseña que te hemos enviado.</strong></p>
</body>
</html>`, tempPassword)
}
