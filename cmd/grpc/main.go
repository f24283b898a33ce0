package main

import (
	"flag"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"

	"tx-resolver-sol/internal/config"
	"tx-resolver-sol/internal/logic/addons"
	"tx-resolver-sol/internal/logic/parser"
	"tx-resolver-sol/internal/logic/stream"
	"tx-resolver-sol/internal/svc"
	"tx-resolver-sol/pkg/logger"
)

var configFile = flag.String("f", "etc/grpc.yaml", "the config file")

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
		}
	}()

	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	if err := logger.InitLogger(c.LogConf.ToLogOption()); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 注册全部程序解码器；可选加载外部平台识别表
	parser.Init()
	if c.PlatformTablePath != "" {
		if err := addons.LoadPlatformTable(c.PlatformTablePath); err != nil {
			panic(err)
		}
	}

	serviceContext, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}
	defer serviceContext.Close()

	sg := zerosvc.NewServiceGroup()

	blockChan := make(chan *pb.SubscribeUpdateBlock, 200)
	defer close(blockChan)

	streamService, err := stream.NewGrpcStreamManager(serviceContext, blockChan)
	if err != nil {
		panic(err)
	}
	sg.Add(streamService)
	sg.Add(stream.NewBlockProcessor(serviceContext, blockChan))

	logger.Infof("Starting grpc stream service")
	sg.Start()

	// 等待退出信号
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Infof("Shutting down services...")
	sg.Stop()
}
