package main

import (
	"context"
	"net"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/armor-builder/internal/config"
	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
	"github.com/KirkDiggler/armor-builder/internal/handlers/armor/v1alpha1"
	"github.com/KirkDiggler/armor-builder/internal/orchestrators/builder"
	buildermock "github.com/KirkDiggler/armor-builder/internal/orchestrators/builder/mock"
	armorset "github.com/KirkDiggler/armor-builder/internal/repositories/armor_set"
	"github.com/KirkDiggler/armor-builder/internal/testutils"
)

func TestNewSetRepositoryFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sets.json")

	repo, closeFn, err := newSetRepository(ctx, config.StoreConfig{Backend: config.BackendFile}, path)
	require.NoError(t, err)
	defer closeFn()

	_, err = repo.SaveAll(ctx, armorset.SaveAllInput{Sets: []*armor.Set{testutils.CreateTestSet("Raid")}})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestNewSetRepositoryRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	repo, closeFn, err := newSetRepository(ctx, config.StoreConfig{
		Backend:   config.BackendRedis,
		RedisAddr: mr.Addr(),
		RedisMode: "single",
	}, "")
	require.NoError(t, err)
	defer closeFn()

	_, err = repo.SaveAll(ctx, armorset.SaveAllInput{Sets: []*armor.Set{testutils.CreateTestSet("Raid")}})
	require.NoError(t, err)
	assert.True(t, mr.Exists(armorset.GetKey("Raid")))
}

func TestNewSetRepositoryUnknownBackend(t *testing.T) {
	_, closeFn, err := newSetRepository(context.Background(), config.StoreConfig{Backend: "sqlite"}, "")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	closeFn()
}

func TestGRPCServerRecoversFromPanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := buildermock.NewMockService(ctrl)
	service.EXPECT().
		GetSet(gomock.Any(), &builder.GetSetInput{Name: "Raid"}).
		DoAndReturn(func(context.Context, *builder.GetSetInput) (*builder.GetSetOutput, error) {
			panic("boom")
		})

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Service: service})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := newGRPCServer(testLogger(t))
	v1alpha1.RegisterArmorServiceServer(srv, handler)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = v1alpha1.NewClient(conn).GetSet(context.Background(), &v1alpha1.GetSetRequest{Name: "Raid"})
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
}
