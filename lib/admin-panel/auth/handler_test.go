package adminpanelauthhandler

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Run(`valid credentials`, func(t *testing.T) {
		NewHandler("admin", "pa$$", "secret", 60)
		resp, err := Instance.Login("admin", "pa$$")
		require.Nil(t, err)
		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte("secret"), nil
		})
		require.Nil(t, err)
		require.Equal(t, "admin", token.Claims.(jwt.MapClaims)["sub"])
	})

	t.Run(`wrong password`, func(t *testing.T) {
		NewHandler("admin", "pa$$", "secret", 60)
		_, err := Instance.Login("admin", "pass")
		require.Equal(t, ErrBadCredentials, err)
		_, err = Instance.Login("root", "pa$$")
		require.Equal(t, ErrBadCredentials, err)
	})

	t.Run(`admin access not configured`, func(t *testing.T) {
		NewHandler("admin", "", "secret", 60)
		_, err := Instance.Login("admin", "")
		require.Equal(t, ErrBadCredentials, err)
	})
}
