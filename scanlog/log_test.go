package scanlog_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pivotal-cf/tlsprobe/scanlog"
)

var _ = Describe("Logger", func() {
	var (
		core     zapcore.Core
		recorded *observer.ObservedLogs
		logger   scanlog.Logger
	)

	BeforeEach(func() {
		core, recorded = observer.New(zap.InfoLevel)
		logger = scanlog.New(zap.New(core))
	})

	It("formats messages at each level", func() {
		logger.Debugf("hidden %d", 1)
		logger.Infof("probing %s", "h:1")
		logger.Warnf("slow %s", "h:1")
		logger.Errorf("failed %s", "h:1")

		entries := recorded.AllUntimed()
		Expect(entries).To(HaveLen(3))
		Expect(entries[0].Message).To(Equal("probing h:1"))
		Expect(entries[0].Level).To(Equal(zap.InfoLevel))
		Expect(entries[1].Level).To(Equal(zap.WarnLevel))
		Expect(entries[2].Message).To(Equal("failed h:1"))
	})

	It("carries fields added with With", func() {
		logger.With("host", "example.com", "port", 443).Infof("done")

		entries := recorded.FilterField(zap.String("host", "example.com")).AllUntimed()
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].ContextMap()).To(HaveKeyWithValue("port", int64(443)))
	})

	It("builds a stderr logger", func() {
		l, err := scanlog.NewLogger(true)
		Expect(err).NotTo(HaveOccurred())
		Expect(l).NotTo(BeNil())
	})

	It("discards everything with the nop logger", func() {
		nop := scanlog.NewNopLogger()
		nop.With("a", "b").Errorf("ignored")
	})
})
