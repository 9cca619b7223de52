package renderer

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-starmap/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/grid.wgsl
var gridShaderSource string

// gridVertexCount covers both axes of the grid in grid.wgsl: 2 * (2*50 + 1) lines, 2 vertices each.
const gridVertexCount = 2 * (2*50 + 1) * 2

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat wgpu.TextureFormat
	depthTexture  *wgpu.Texture
	depthView     *wgpu.TextureView

	presentMode wgpu.PresentMode // defaults to PresentModeImmediate (Uncapped)
	clearColor  wgpu.Color

	surfaceWidth, surfaceHeight int // size passed to the last ConfigureSurface

	viewBuffer    *wgpu.Buffer
	viewBindGroup *wgpu.BindGroup
	gridPipeline  *wgpu.RenderPipeline

	// Frame state between DrawFrame and Present
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

type wgpuRendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and depth buffer for the given size and
	// builds the grid pipeline on first use.
	ConfigureSurface(width, height int) error

	SetPresentMode(mode PresentMode)

	// WriteViewUniform uploads a marshalled camera.GPUViewUniform.
	WriteViewUniform(data []byte)

	// DrawFrame acquires the swapchain texture, runs one render pass for the frame and submits it.
	DrawFrame(frame Frame) error

	Present()

	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, clearColor [4]float64) wgpuRendererBackend {
	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeImmediate,
		clearColor:  wgpu.Color{R: clearColor[0], G: clearColor[1], B: clearColor[2], A: clearColor[3]},
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		panic(err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		panic(err)
	}
	w.device = d
	w.queue = d.GetQueue()

	var u camera.GPUViewUniform
	w.viewBuffer, err = d.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "View Uniform Buffer",
		Size:  uint64(u.Size()),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}

	return w
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	if len(capabilities.Formats) == 0 {
		return errors.New("surface reports no supported formats")
	}
	b.surfaceFormat = capabilities.Formats[0]
	b.surfaceWidth, b.surfaceHeight = width, height

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	if b.depthView != nil {
		b.depthView.Release()
		b.depthTexture.Release()
	}

	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("failed to create depth texture: %w", err)
	}
	depthView, err := depthTexture.CreateView(nil)
	if err != nil {
		depthTexture.Release()
		return fmt.Errorf("failed to create depth view: %w", err)
	}
	b.depthTexture = depthTexture
	b.depthView = depthView

	if b.gridPipeline == nil {
		if err := b.createGridPipeline(); err != nil {
			return fmt.Errorf("failed to create grid pipeline: %w", err)
		}
	}
	return nil
}

// createGridPipeline builds the line-list pipeline and the view uniform bind group for the
// reference grid. The surface format must already be known.
func (b *wgpuRendererBackendImpl) createGridPipeline() error {
	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Grid Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: camera.GPUViewUniformSource + "\n" + gridShaderSource,
		},
	})
	if err != nil {
		return err
	}

	var u camera.GPUViewUniform
	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "View Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(u.Size()),
				},
			},
		},
	})
	if err != nil {
		return err
	}

	b.viewBindGroup, err = b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "View Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  b.viewBuffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return err
	}

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Grid Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		return err
	}

	b.gridPipeline, err = b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Grid Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    b.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyLineList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	return err
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeVSync:
		b.presentMode = wgpu.PresentModeFifo
	case PresentModeUncapped:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeImmediate
	}
}

func (b *wgpuRendererBackendImpl) WriteViewUniform(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queue.WriteBuffer(b.viewBuffer, 0, data)
}

func (b *wgpuRendererBackendImpl) DrawFrame(frame Frame) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// If a previous frame's surface texture is still held, avoid acquiring another one;
	// wgpu-native rejects overlapping acquisitions.
	if b.frameSurface != nil {
		return errors.New("previous frame surface not yet presented")
	}

	vp := clampViewport(frame.Viewport, b.surfaceWidth, b.surfaceHeight)
	if vp[2] == 0 || vp[3] == 0 {
		return fmt.Errorf("viewport %v lies outside the %dx%d surface", frame.Viewport, b.surfaceWidth, b.surfaceHeight)
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}
	defer encoder.Release()

	colorLoad := wgpu.LoadOpLoad
	if frame.Clear&camera.ClearColor != 0 {
		colorLoad = wgpu.LoadOpClear
	}
	depthLoad := wgpu.LoadOpLoad
	if frame.Clear&camera.ClearDepth != 0 {
		depthLoad = wgpu.LoadOpClear
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     colorLoad,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: b.clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthView,
			DepthLoadOp:     depthLoad,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})

	pass.SetViewport(float32(vp[0]), float32(vp[1]), float32(vp[2]), float32(vp[3]), 0, 1)

	if frame.Grid && b.gridPipeline != nil {
		pass.SetPipeline(b.gridPipeline)
		pass.SetBindGroup(0, b.viewBindGroup, nil)
		pass.Draw(gridVertexCount, 1, 0, 0)
	}
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}
	b.queue.Submit(commandBuffer)
	commandBuffer.Release()

	b.frameSurface = surfaceTexture
	b.frameView = view
	return nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	// If no frame surface is held, nothing to present.
	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	b.frameView.Release()
	b.frameView = nil
	b.frameSurface.Release()
	b.frameSurface = nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.depthView != nil {
		b.depthView.Release()
		b.depthTexture.Release()
	}
	if b.gridPipeline != nil {
		b.gridPipeline.Release()
		b.viewBindGroup.Release()
	}
	b.viewBuffer.Release()
	b.queue.Release()
	b.device.Release()
	b.adapter.Release()
	b.surface.Release()
	b.instance.Release()
	log.Println("[Renderer] released GPU resources")
}
