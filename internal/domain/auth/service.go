package auth

import "context"

// AuthService defines the login flows. Both flows reject inactive
// accounts and any attempt made while the access window is closed.
type AuthService interface {
	// Login authenticates RUT+password credentials.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// LoginWithQR authenticates a scanned QR login secret.
	LoginWithQR(ctx context.Context, req QRLoginRequest) (LoginResponse, error)
}
