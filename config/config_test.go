package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ia64dis/config"
)

var _ = Describe("Config", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "config-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	Describe("Default", func() {
		It("should be valid", func() {
			c := config.Default()
			Expect(c.Validate()).To(Succeed())
			Expect(c.Listing.Workers).To(BeNumerically(">", 0))
			Expect(c.Listing.ChunkBundles).To(Equal(4096))
			Expect(c.Listing.ShowLabels).To(BeTrue())
			Expect(c.Decoder.Strict).To(BeFalse())
		})
	})

	DescribeTable("Save and Load",
		func(name string) {
			path := filepath.Join(tempDir, name)
			c := config.Default()
			c.Cache.Size = 32 * 1024
			c.Listing.Workers = 3
			c.Listing.Color = true
			c.Decoder.Strict = true
			Expect(c.Save(path)).To(Succeed())

			loaded, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(c))
		},
		Entry("JSON", "ia64dis.json"),
		Entry("YAML", "ia64dis.yaml"),
		Entry("YML", "ia64dis.yml"),
	)

	Describe("Load", func() {
		It("should keep defaults for missing YAML fields", func() {
			path := filepath.Join(tempDir, "partial.yaml")
			Expect(os.WriteFile(path, []byte("decoder:\n  strict: true\nlisting:\n  workers: 2\n"), 0644)).To(Succeed())

			c, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Decoder.Strict).To(BeTrue())
			Expect(c.Listing.Workers).To(Equal(2))
			Expect(c.Listing.ChunkBundles).To(Equal(4096))
			Expect(c.Cache).To(Equal(config.Default().Cache))
		})

		It("should keep defaults for missing JSON fields", func() {
			path := filepath.Join(tempDir, "partial.json")
			Expect(os.WriteFile(path, []byte(`{"cache": {"associativity": 8}}`), 0644)).To(Succeed())

			c, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Cache.Associativity).To(Equal(8))
			Expect(c.Cache.BlockSize).To(Equal(64))
		})

		It("should report a missing file", func() {
			_, err := config.Load(filepath.Join(tempDir, "missing.json"))
			Expect(err).To(MatchError(ContainSubstring("failed to read config file")))
		})

		It("should report malformed content", func() {
			path := filepath.Join(tempDir, "bad.json")
			Expect(os.WriteFile(path, []byte("{"), 0644)).To(Succeed())

			_, err := config.Load(path)
			Expect(err).To(MatchError(ContainSubstring("failed to parse config")))
		})

		It("should reject unknown extensions", func() {
			_, err := config.Load(filepath.Join(tempDir, "config.toml"))
			Expect(err).To(MatchError(ContainSubstring("unsupported config file extension")))
		})
	})

	Describe("Validate", func() {
		It("should reject bad cache geometry", func() {
			c := config.Default()
			c.Cache.BlockSize = 8
			Expect(c.Validate()).To(MatchError(HavePrefix("cache:")))
		})

		It("should reject non-positive workers", func() {
			c := config.Default()
			c.Listing.Workers = 0
			Expect(c.Validate()).To(MatchError("listing.workers must be > 0"))
		})

		It("should reject non-positive chunk sizes", func() {
			c := config.Default()
			c.Listing.ChunkBundles = -1
			Expect(c.Validate()).To(MatchError("listing.chunk_bundles must be > 0"))
		})
	})
})
