package service

import "errors"

var (
	// ErrConfigurationMissing means provider credentials could not be
	// resolved from the Config row or the environment.
	ErrConfigurationMissing = errors.New("configurações do Mercado Pago não encontradas")

	// ErrMissingWebhookData means a required signature input (header,
	// request id, data id or shared secret) is absent.
	ErrMissingWebhookData = errors.New("dados obrigatórios ausentes")

	// ErrSignatureInvalid means the webhook HMAC did not match.
	ErrSignatureInvalid = errors.New("assinatura inválida")

	ErrPresentNotFound    = errors.New("presente não encontrado")
	ErrOutOfStock         = errors.New("presente sem estoque suficiente")
	ErrEmptyCart          = errors.New("nenhum presente válido no carrinho")
	ErrInvalidContent     = errors.New("conteúdo inválido")
	ErrInvalidCredentials = errors.New("senha inválida")
)
