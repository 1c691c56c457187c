package jwt_test

import (
	"time"

	tokenIssuer "ledgerload/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var service *tokenIssuer.JWTService

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("secret"))
		DeferCleanup(func() {
			tokenIssuer.TimeNow = time.Now
		})
	})

	It("should validate a token it issued", func() {
		token, err := service.Issue("operator", time.Hour)
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(token)

		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("operator"))
		Expect(claims["iss"]).To(Equal("ledgerload"))
	})

	It("should reject an expired token", func() {
		tokenIssuer.TimeNow = func() time.Time {
			return time.Now().Add(-2 * time.Hour)
		}
		token, err := service.Issue("operator", time.Hour)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(token)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	It("should reject a token signed with another secret", func() {
		token, err := tokenIssuer.NewJWTService([]byte("other")).Issue("operator", time.Hour)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(token)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject a token from another issuer", func() {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "operator",
			"iss": "someone-else",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := service.Sign(token)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject garbage", func() {
		_, err := service.Validate("not-a-token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})
})
