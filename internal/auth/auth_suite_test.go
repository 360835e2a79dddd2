// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/holomush/credcheck/internal/auth"
	"github.com/holomush/credcheck/internal/credential"
)

func TestAuthSpecs(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Suite")
}

var _ = Describe("Authenticator", func() {
	var a *auth.Authenticator

	BeforeEach(func() {
		a = auth.NewAuthenticator(auth.DemoRegistry())
	})

	Describe("demo registry", func() {
		DescribeTable("accepts every registered credential",
			func(username, password string) {
				Expect(credential.Validate(username, password).OK).To(BeTrue())
				Expect(a.Authenticate(username, password)).To(BeTrue())
			},
			Entry("alice", "alice", "P@ssw0rd1"),
			Entry("bob", "bob", "Secret#123"),
			Entry("alice upper-cased", "ALICE", "P@ssw0rd1"),
			Entry("bob mixed case", "bOb", "Secret#123"),
		)
	})

	Describe("failures", func() {
		It("does not distinguish unknown users from wrong secrets", func() {
			unknown := a.Authenticate("carol", "anything")
			wrong := a.Authenticate("alice", "wrongpass")

			Expect(unknown).To(BeFalse())
			Expect(wrong).To(Equal(unknown))
		})

		It("compares secrets case-sensitively", func() {
			Expect(a.Authenticate("bob", "SECRET#123")).To(BeFalse())
		})
	})

	Describe("repeated calls", func() {
		It("returns the same answer every time", func() {
			for range 3 {
				Expect(a.Authenticate("ALICE", "P@ssw0rd1")).To(BeTrue())
				Expect(a.Authenticate("alice", "wrongpass")).To(BeFalse())
			}
		})
	})
})
