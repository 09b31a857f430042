//go:build unit

package user_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/user"
	"studio-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Email{}),
	cmpopts.IgnoreFields(user.User{}, "id", "createdAt", "updatedAt"),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		role, _ := user.NewRole("admin")
		expected, err := user.NewUser(email, "Test Staff", "hashed_password", role, time.Now())
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "大文字は小文字に正規化",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Staff@Studio.COM ") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "staff ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("staff") },
			},
			{
				name:   "intern ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("intern") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("表示名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空白のみの表示名NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("  ") },
				errIs:  user.ErrInvalidName,
			},
		})
	})

	t.Run("状態検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "アクティブユーザーOK",
				mutate: func(b *builder.UserBuilder) { /* デフォルトでアクティブ */ },
			},
			{
				name:   "非アクティブユーザーOK",
				mutate: func(b *builder.UserBuilder) { b.AsInactive() },
			},
		})
	})

	t.Run("精算権限", func(t *testing.T) {
		assert.True(t, user.RoleAdmin.CanSettleBookings())
		assert.True(t, user.RoleStaff.CanSettleBookings())
		assert.False(t, user.RoleIntern.CanSettleBookings())
	})
}

func TestCredentials(t *testing.T) {
	t.Run("正常", func(t *testing.T) {
		c, err := user.NewCredentials("Staff@Example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "staff@example.com", c.Email().Value())
		assert.Equal(t, "password123", c.Password().Value())
	})

	t.Run("短いパスワードNG", func(t *testing.T) {
		_, err := user.NewCredentials("staff@example.com", "short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
