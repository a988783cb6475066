package openssl_test

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/tlsprobe/openssl"
)

const fakeOpenSSL = `#!/bin/sh
case "$1" in
  version)
    echo "OpenSSL 1.0.2k-fips  26 Jan 2017"
    ;;
  ciphers)
    if [ "$2" != "ALL:COMPLEMENTOFALL" ]; then
      echo "unexpected cipher string $2" >&2
      exit 2
    fi
    echo "ECDHE-RSA-AES256-GCM-SHA384:AES128-SHA:TLS_FAKE_ONLY"
    ;;
  *)
    echo "unknown command $1" >&2
    exit 1
    ;;
esac
`

var _ = Describe("CLI", func() {
	var (
		tmpdir string
		cli    *openssl.CLI
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		tmpdir, err = ioutil.TempDir("", "openssl")
		Expect(err).NotTo(HaveOccurred())

		path := filepath.Join(tmpdir, "openssl")
		err = ioutil.WriteFile(path, []byte(fakeOpenSSL), 0755)
		Expect(err).NotTo(HaveOccurred())

		cli = openssl.NewCLI(path)
		ctx = context.Background()
	})

	AfterEach(func() {
		os.RemoveAll(tmpdir)
	})

	It("reports the library version", func() {
		version, err := cli.Version(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(version).To(Equal("OpenSSL 1.0.2k-fips  26 Jan 2017"))
	})

	It("lists the compiled ciphers", func() {
		ciphers, err := cli.Ciphers(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(ciphers).To(Equal([]string{"ECDHE-RSA-AES256-GCM-SHA384", "AES128-SHA", "TLS_FAKE_ONLY"}))
	})

	It("fails when the binary is missing", func() {
		missing := openssl.NewCLI(filepath.Join(tmpdir, "nope"))

		_, err := missing.Version(ctx)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("failed to run"))
	})

	It("defaults to openssl on the PATH", func() {
		Expect(openssl.NewCLI("").Path).To(Equal("openssl"))
	})

	Describe("ParseCipherList", func() {
		It("splits on colons and drops blanks", func() {
			Expect(openssl.ParseCipherList("A:B::C\n")).To(Equal([]string{"A", "B", "C"}))
		})

		It("returns an empty list for empty output", func() {
			Expect(openssl.ParseCipherList("\n")).To(BeEmpty())
		})
	})
})
