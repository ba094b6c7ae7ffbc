package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgidle.game.v1alpha1.GameService"

// GameServiceServer is the server API for GameService
type GameServiceServer interface {
	StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error)
	EndSession(context.Context, *EndSessionRequest) (*EndSessionResponse, error)
	Click(context.Context, *ClickRequest) (*ClickResponse, error)
	RecordEvent(context.Context, *RecordEventRequest) (*RecordEventResponse, error)
	UpgradeBuilding(context.Context, *UpgradeBuildingRequest) (*UpgradeBuildingResponse, error)
	SelectZone(context.Context, *SelectZoneRequest) (*SelectZoneResponse, error)
	Prestige(context.Context, *PrestigeRequest) (*PrestigeResponse, error)
	ClaimReward(context.Context, *ClaimRewardRequest) (*ClaimRewardResponse, error)
	Craft(context.Context, *CraftRequest) (*CraftResponse, error)
	Equip(context.Context, *EquipRequest) (*EquipResponse, error)
	GetState(context.Context, *GetStateRequest) (*GetStateResponse, error)
}

// GameServiceDesc describes GameService for grpc.Server.RegisterService
var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("StartSession", GameServiceServer.StartSession),
		unary("EndSession", GameServiceServer.EndSession),
		unary("Click", GameServiceServer.Click),
		unary("RecordEvent", GameServiceServer.RecordEvent),
		unary("UpgradeBuilding", GameServiceServer.UpgradeBuilding),
		unary("SelectZone", GameServiceServer.SelectZone),
		unary("Prestige", GameServiceServer.Prestige),
		unary("ClaimReward", GameServiceServer.ClaimReward),
		unary("Craft", GameServiceServer.Craft),
		unary("Equip", GameServiceServer.Equip),
		unary("GetState", GameServiceServer.GetState),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgidle/game/v1alpha1/game.json",
}

// RegisterGameServiceServer registers srv on s
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}

// FullMethod returns the /service/method path of a GameService method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unary[Req, Resp any](
	method string,
	call func(GameServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(GameServiceServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}

			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// GameServiceClient is the client API for GameService. Every call is sent
// with the JSON codec.
type GameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient creates a client on cc
func NewGameServiceClient(cc grpc.ClientConnInterface) *GameServiceClient {
	return &GameServiceClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, c *GameServiceClient, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// StartSession calls GameService.StartSession
func (c *GameServiceClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error) {
	return invoke[StartSessionRequest, StartSessionResponse](ctx, c, "StartSession", in, opts)
}

// EndSession calls GameService.EndSession
func (c *GameServiceClient) EndSession(ctx context.Context, in *EndSessionRequest, opts ...grpc.CallOption) (*EndSessionResponse, error) {
	return invoke[EndSessionRequest, EndSessionResponse](ctx, c, "EndSession", in, opts)
}

// Click calls GameService.Click
func (c *GameServiceClient) Click(ctx context.Context, in *ClickRequest, opts ...grpc.CallOption) (*ClickResponse, error) {
	return invoke[ClickRequest, ClickResponse](ctx, c, "Click", in, opts)
}

// RecordEvent calls GameService.RecordEvent
func (c *GameServiceClient) RecordEvent(ctx context.Context, in *RecordEventRequest, opts ...grpc.CallOption) (*RecordEventResponse, error) {
	return invoke[RecordEventRequest, RecordEventResponse](ctx, c, "RecordEvent", in, opts)
}

// UpgradeBuilding calls GameService.UpgradeBuilding
func (c *GameServiceClient) UpgradeBuilding(ctx context.Context, in *UpgradeBuildingRequest, opts ...grpc.CallOption) (*UpgradeBuildingResponse, error) {
	return invoke[UpgradeBuildingRequest, UpgradeBuildingResponse](ctx, c, "UpgradeBuilding", in, opts)
}

// SelectZone calls GameService.SelectZone
func (c *GameServiceClient) SelectZone(ctx context.Context, in *SelectZoneRequest, opts ...grpc.CallOption) (*SelectZoneResponse, error) {
	return invoke[SelectZoneRequest, SelectZoneResponse](ctx, c, "SelectZone", in, opts)
}

// Prestige calls GameService.Prestige
func (c *GameServiceClient) Prestige(ctx context.Context, in *PrestigeRequest, opts ...grpc.CallOption) (*PrestigeResponse, error) {
	return invoke[PrestigeRequest, PrestigeResponse](ctx, c, "Prestige", in, opts)
}

// ClaimReward calls GameService.ClaimReward
func (c *GameServiceClient) ClaimReward(ctx context.Context, in *ClaimRewardRequest, opts ...grpc.CallOption) (*ClaimRewardResponse, error) {
	return invoke[ClaimRewardRequest, ClaimRewardResponse](ctx, c, "ClaimReward", in, opts)
}

// Craft calls GameService.Craft
func (c *GameServiceClient) Craft(ctx context.Context, in *CraftRequest, opts ...grpc.CallOption) (*CraftResponse, error) {
	return invoke[CraftRequest, CraftResponse](ctx, c, "Craft", in, opts)
}

// Equip calls GameService.Equip
func (c *GameServiceClient) Equip(ctx context.Context, in *EquipRequest, opts ...grpc.CallOption) (*EquipResponse, error) {
	return invoke[EquipRequest, EquipResponse](ctx, c, "Equip", in, opts)
}

// GetState calls GameService.GetState
func (c *GameServiceClient) GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error) {
	return invoke[GetStateRequest, GetStateResponse](ctx, c, "GetState", in, opts)
}
