package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/bizmarket/internal/auth"
	"github.com/BruksfildServices01/bizmarket/internal/db/dbtest"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/infra/repository"
	"github.com/BruksfildServices01/bizmarket/internal/validators"
)

const secret = "0123456789abcdef0123456789abcdef"

type fixture struct {
	users  *repository.UserGormRepository
	authn  *auth.Authenticator
	signUp *SignUp
	signIn *SignIn
}

func newFixture(t *testing.T) *fixture {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	users := repository.NewUserGormRepository(dbtest.New(t))
	authn := auth.NewAuthenticator(auth.NewIssuer(secret, time.Hour), auth.NewSessionStore(rdb), users)

	return &fixture{
		users:  users,
		authn:  authn,
		signUp: NewSignUp(users, authn, validators.NewDomainChecker(false)),
		signIn: NewSignIn(users, authn),
	}
}

func signUpRequest(email string) dto.SignUpRequest {
	return dto.SignUpRequest{
		Email:    email,
		Password: "secret123",
		UserData: dto.UserData{FullName: "Sam Seller", UserType: "seller"},
	}
}

func TestSignUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.signUp.Execute(ctx, signUpRequest("  Sam@Example.com "))
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "sam@example.com", res.User.Email)
	assert.Equal(t, "seller", res.User.UserType)
	assert.True(t, res.User.Verified)
	assert.NotEqual(t, "secret123", res.User.PasswordHash)

	_, err = f.signUp.Execute(ctx, signUpRequest("sam@example.com"))
	require.Error(t, err)
	assert.True(t, httperr.Is(err, "user_exists"))
}

func TestSignUp_DefaultsToBuyer(t *testing.T) {
	f := newFixture(t)
	req := signUpRequest("bo@example.com")
	req.UserData.UserType = ""

	res, err := f.signUp.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "buyer", res.User.UserType)
}

func TestSignUp_CannotSelfAssignAdmin(t *testing.T) {
	f := newFixture(t)
	req := signUpRequest("eve@example.com")
	req.UserData.UserType = "admin"

	_, err := f.signUp.Execute(context.Background(), req)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	exists, err := f.users.ExistsByEmail(context.Background(), "eve@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSignIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.signUp.Execute(ctx, signUpRequest("sam@example.com"))
	require.NoError(t, err)

	res, err := f.signIn.Execute(ctx, dto.SignInRequest{Email: "SAM@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	_, err = f.signIn.Execute(ctx, dto.SignInRequest{Email: "sam@example.com", Password: "wrong-password"})
	assert.True(t, httperr.Is(err, "invalid_credentials"))

	// unknown emails are indistinguishable from bad passwords
	_, err = f.signIn.Execute(ctx, dto.SignInRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.True(t, httperr.Is(err, "invalid_credentials"))
}

func TestVerifyAndSignOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res, err := f.signUp.Execute(ctx, signUpRequest("sam@example.com"))
	require.NoError(t, err)
	header := "Bearer " + res.Token

	me, err := NewVerify(f.authn).Execute(ctx, header)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, me.User.ID)
	assert.Empty(t, me.Token)

	require.NoError(t, NewSignOut(f.authn).Execute(ctx, header))

	_, err = NewVerify(f.authn).Execute(ctx, header)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindUnauthorized))

	err = NewSignOut(f.authn).Execute(ctx, "")
	assert.True(t, httperr.Is(err, "missing_token"))
}
