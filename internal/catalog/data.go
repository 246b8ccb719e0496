package catalog

var topics = []Topic{
	{ID: 1, Title: "1. Edições de vídeo Autorais", Videos: []Video{
		{ID: 1, Title: "VALORANT COM EDIT", URL: "https://www.youtube.com/embed/XFLZsb7pS9A", Duration: "00:53"},
		{ID: 2, Title: "VALORANT SEM EDIT", URL: "https://www.youtube.com/embed/fka12KhM8X0", Duration: "1:54"},
		{ID: 3, Title: "Vídeo do Cachorro", URL: "https://www.youtube.com/embed/sAFKAqWrx1k", Duration: "0:52"},
	}},
	{ID: 2, Title: "2. Animações", Completed: true, Videos: []Video{
		{ID: 1, Title: "ANIMAÇÕES", URL: "https://www.youtube.com/embed/WJGoF4B2oKQ", Duration: "0:18"},
		{ID: 2, Title: "ANIMAÇÃO 2", URL: "https://www.youtube.com/embed/WSGHid7YX08", Duration: "0:08"},
	}},
	{ID: 3, Title: "3. Codificação e Compressão de Vídeo", Completed: true,
		Description: "Como funciona a compressão de vídeo, codecs H.264, H.265 e VP9.",
		Videos: []Video{
			{ID: 1, Title: "Introdução aos Codecs", URL: "https://www.youtube.com/embed/QoZ8pccsYo4", Duration: "10:15"},
			{ID: 2, Title: "H.264 e H.265", URL: "https://www.youtube.com/embed/QoZ8pccsYo4", Duration: "8:15"},
		}},
	{ID: 4, Title: "4. Sistemas de Streaming",
		Description: "Protocolos de streaming, adaptive bitrate e entrega de conteúdo.",
		Videos: []Video{
			{ID: 1, Title: "Protocolos de Streaming", URL: "https://www.youtube.com/embed/7AMRfNKwuYo", Duration: "15:20"},
		}},
	{ID: 5, Title: "5. Edição e Processamento de Vídeo",
		Description: "Técnicas de edição, efeitos visuais e pós-produção digital.",
		Videos: []Video{
			{ID: 1, Title: "Técnicas de Edição", URL: "https://www.youtube.com/embed/6ga4IICXyCE", Duration: "12:30"},
			{ID: 2, Title: "Efeitos Visuais", URL: "https://www.youtube.com/embed/adt7fzqVkWQ", Duration: "7:45"},
		}},
	{ID: 6, Title: "6. Áudio em Sistemas Multimídia",
		Description: "Sincronização audiovisual, formatos de áudio e processamento.",
		Videos: []Video{
			{ID: 1, Title: "Sincronização Audiovisual", URL: "https://www.youtube.com/embed/1RIA9U5oXro", Duration: "14:40"},
		}},
}

var gallery = []Image{
	{ID: 1, URL: "https://images.vexels.com/media/users/3/114124/raw/2652e508767a00ad44af0d5381e2240e-vetor-de-tomate.jpg", Title: "Imagem vetorial", Description: "Tomate Vector", Category: "Vetorial"},
	{ID: 2, URL: "https://images.vexels.com/media/users/3/75896/raw/b68ecc3ef4c28c35db1cbd50f4e35c1a-ponteiros-do-mouse-de-vetor.jpg", Title: "Imagem Vetorial", Description: "Cursor Vector", Category: "Vetorial"},
	{ID: 3, URL: "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158", Title: "Exemplo de Imagem 3", Description: "Robótica e automação", Category: "Ciência"},
	{ID: 4, URL: "https://mocha-cdn.com/019abd73-df6a-720b-9c3d-48a725c07418/whatsapp.svg", Title: "Imagem vetorial", Description: "Whatsapp Vector", Category: "Vetorial"},
	{ID: 5, URL: "https://mocha-cdn.com/019abd73-df6a-720b-9c3d-48a725c07418/github.svg", Title: "Imagem vetorial", Description: "Github Vector", Category: "Vetorial"},
	{ID: 6, URL: "https://mocha-cdn.com/019abd73-df6a-720b-9c3d-48a725c07418/wallpaper.jpg", Title: "Imagem Matricial", Description: "Wallpaper Evangelion", Category: "Matricial"},
	{ID: 7, URL: "https://mocha-cdn.com/019abd73-df6a-720b-9c3d-48a725c07418/trabalho_2-(sem-fundo).svg", Title: "Imagem Vetorial", Description: "Trabalho 2", Category: "Vetorial"},
}

var tracks = []Track{
	{ID: 1, Title: "Aula de Multimídia", Artist: "Conteúdo Educacional", URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3"},
}

// sections is the site navigation in display order. Performance has no
// narration.
var sections = []Section{
	{ID: "home", Label: "Início", NarrationFileID: "14aFMKEAqMM7b3GFB4uCHt7upKLQmJqlO"},
	{ID: "content", Label: "Conteúdo", NarrationFileID: "1wBJyoP7zNgqDNcnKKC1z0f-yGxBasDtx"},
	{ID: "quiz", Label: "Avaliação", NarrationFileID: "1ic0n6pbXIkyQ7fIppe6tE__0OLccdpvv"},
	{ID: "performance", Label: "Desempenho"},
	{ID: "audio", Label: "Áudio", NarrationFileID: "18176T84ky6V7hzpGqolslPUvaITEV8yU"},
	{ID: "images", Label: "Imagens", NarrationFileID: "1hQrne0A6t3gKs-70sIOMN1YHH17T79R-"},
}
