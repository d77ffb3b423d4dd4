package services

import (
	svc "notemarket/internal/marketplace/ports/services"
)

// ServiceFactory создает вспомогательные сервисы маркетплейса.
type ServiceFactory struct {
	passwordService svc.PasswordService
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
	}
}

// PasswordService возвращает сервис работы с паролями.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return f.passwordService
}
