package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrWeakPassword - пароль слишком слабый
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - email уже используется
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверный email или пароль
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен (refresh, verify, reset)
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrOneTimeTokenInvalid - одноразовый токен (verify/reset) не найден или просрочен
var ErrOneTimeTokenInvalid = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusBadRequest,
)

// ErrTokenConsumed - одноразовый токен уже был использован
var ErrTokenConsumed = New(
	CodeInvalidToken,
	"auth",
	"Token has already been used",
	http.StatusBadRequest,
)

// ErrUserNotVerified - email не подтвержден
var ErrUserNotVerified = New(
	CodeForbidden,
	"auth",
	"Please verify your email address",
	http.StatusForbidden,
)

// ErrInsufficientPermissions - роль не допускает действие
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Ownership ---

// ErrNotResourceOwner - аутентифицированный пользователь не владеет ресурсом
var ErrNotResourceOwner = New(
	CodeForbidden,
	"ownership",
	"You do not have access to this resource",
	http.StatusForbidden,
)

// --- Companies & Jobs ---

// ErrCompanyNotFound - компания не найдена
var ErrCompanyNotFound = New(
	CodeNotFound,
	"company",
	"Company not found",
	http.StatusNotFound,
)

// ErrJobNotFound - вакансия не найдена
var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// ErrJobClosed - отклик на закрытую вакансию
var ErrJobClosed = New(
	CodeInvalidStatus,
	"job",
	"This job is no longer accepting applications",
	http.StatusConflict,
)

// --- Applications ---

// ErrApplicationNotFound - отклик не найден
var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

// ErrAlreadyApplied - повторный отклик на ту же вакансию
var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

// --- Profiles ---

// ErrProfileNotFound - профиль не найден
var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)

// ErrProfileAlreadyExists - профиль уже создан
var ErrProfileAlreadyExists = New(
	CodeAlreadyExists,
	"profile",
	"Profile already exists",
	http.StatusConflict,
)
