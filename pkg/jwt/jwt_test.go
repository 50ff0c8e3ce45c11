package jwt_test

import (
	"time"

	tokenIssuer "crowdfunder/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		now     time.Time
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		tokenIssuer.TimeNow = func() time.Time { return now }
		service = tokenIssuer.NewJWTService([]byte("secret"))
		info = tokenIssuer.TokenInfo{UserName: "operator", Subject: "42", Expiration: 24}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	sign := func(info tokenIssuer.TokenInfo) string {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())
		return signed
	}

	It("should round trip the operator claims", func() {
		claims, err := service.Validate(sign(info))
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["username"]).To(Equal("operator"))
		Expect(claims["exp"]).To(BeNumerically("==", now.Add(24*time.Hour).Unix()))

		sub, err := tokenIssuer.Subject(claims)
		Expect(err).NotTo(HaveOccurred())
		Expect(sub).To(Equal("42"))
	})

	It("should sign with HS512", func() {
		Expect(service.Generate(info).Method).To(Equal(jwt.SigningMethodHS512))
	})

	It("should reject expired tokens", func() {
		signed := sign(info)
		now = now.Add(25 * time.Hour)

		_, err := service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	It("should reject tokens signed with another secret", func() {
		other := tokenIssuer.NewJWTService([]byte("other"))
		signed, err := other.Sign(other.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject tokens from another issuer", func() {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"iss": "someone", "sub": "42"})
		signed, err := service.Sign(token)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject garbage", func() {
		_, err := service.Validate("not.a.token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should require a subject", func() {
		_, err := tokenIssuer.Subject(jwt.MapClaims{})
		Expect(err).To(MatchError(tokenIssuer.ErrMissingSubject))
	})
})
