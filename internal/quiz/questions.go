package quiz

// courseQuestions is the question bank for the digital video and multimedia
// module.
var courseQuestions = []Question{
	{
		ID:     1,
		Prompt: "Observe a imagem acima. Qual formato de arquivo é utilizado para imagens vetoriais como esta?",
		Options: []string{
			"PNG",
			"JPEG",
			"SVG",
			"BMP",
		},
		Correct:     2,
		Explanation: "SVG (Scalable Vector Graphics) é o formato padrão para imagens vetoriais na web, permitindo escalabilidade sem perda de qualidade pois usa equações matemáticas para definir formas.",
		ImageURL:    "https://mocha-cdn.com/019abd73-df6a-720b-9c3d-48a725c07418/trabalho_2-(sem-fundo).svg",
	},
	{
		ID:     2,
		Prompt: "A imagem acima é um exemplo de imagem matricial (raster). Qual é a principal característica deste tipo de imagem?",
		Options: []string{
			"Pode ser ampliada infinitamente sem perda de qualidade",
			"É composta por pixels em uma grade",
			"Usa equações matemáticas para definir formas",
			"Sempre tem fundo transparente",
		},
		Correct:     1,
		Explanation: "Imagens matriciais (raster) são compostas por uma grade de pixels, cada um com uma cor específica. Ao ampliar muito, pode haver perda de qualidade (pixelização), diferente de imagens vetoriais.",
		ImageURL:    "https://mocha-cdn.com/019abd73-df6a-720b-9c3d-48a725c07418/wallpaper.jpg",
	},
	{
		ID:     3,
		Prompt: "Qual é a principal diferença entre H.264 e H.265?",
		Options: []string{
			"H.265 usa mais largura de banda",
			"H.265 oferece melhor compressão com mesma qualidade",
			"H.264 é mais recente",
			"Não há diferença significativa",
		},
		Correct:     1,
		Explanation: "H.265 (HEVC) oferece aproximadamente 50% melhor compressão que H.264, mantendo a mesma qualidade visual.",
	},
	{
		ID:     4,
		Prompt: "O que significa \"resolução 4K\"?",
		Options: []string{
			"1920x1080 pixels",
			"2560x1440 pixels",
			"3840x2160 pixels",
			"7680x4320 pixels",
		},
		Correct:     2,
		Explanation: "Resolução 4K refere-se a 3840x2160 pixels, o que é quatro vezes a resolução Full HD (1080p).",
	},
	{
		ID:     5,
		Prompt: "Qual protocolo é comumente usado para streaming adaptativo?",
		Options: []string{
			"FTP",
			"SMTP",
			"HLS ou DASH",
			"SSH",
		},
		Correct:     2,
		Explanation: "HLS (HTTP Live Streaming) e DASH (Dynamic Adaptive Streaming over HTTP) são os protocolos mais comuns para streaming adaptativo.",
	},
	{
		ID:     6,
		Prompt: "O que é \"frame rate\" em vídeo digital?",
		Options: []string{
			"Tamanho do arquivo de vídeo",
			"Número de frames por segundo",
			"Qualidade da imagem",
			"Taxa de compressão",
		},
		Correct:     1,
		Explanation: "Frame rate (taxa de quadros) é o número de frames exibidos por segundo, geralmente medido em FPS (frames per second).",
	},
	{
		ID:     7,
		Prompt: "Qual formato de áudio oferece compressão sem perdas?",
		Options: []string{
			"MP3",
			"AAC",
			"FLAC",
			"OGG",
		},
		Correct:     2,
		Explanation: "FLAC (Free Lossless Audio Codec) é um formato de compressão de áudio sem perdas, preservando a qualidade original.",
	},
	{
		ID:     8,
		Prompt: "O que é \"bitrate\" em vídeo?",
		Options: []string{
			"Resolução do vídeo",
			"Quantidade de dados processados por segundo",
			"Duração do vídeo",
			"Formato do arquivo",
		},
		Correct:     1,
		Explanation: "Bitrate é a quantidade de dados processados por unidade de tempo, geralmente medido em Mbps (megabits por segundo).",
	},
	{
		ID:     9,
		Prompt: "Qual é a função de um codec em sistemas multimídia?",
		Options: []string{
			"Apenas reproduzir vídeos",
			"Codificar e decodificar dados de mídia",
			"Armazenar arquivos",
			"Conectar dispositivos",
		},
		Correct:     1,
		Explanation: "Um codec (codificador-decodificador) é responsável por codificar e decodificar dados de áudio e vídeo para compressão e reprodução.",
	},
	{
		ID:     10,
		Prompt: "O que representa o termo \"GOP\" em codificação de vídeo?",
		Options: []string{
			"Group of Pictures",
			"Graphics Output Processing",
			"General Operating Protocol",
			"Global Optimization Process",
		},
		Correct:     0,
		Explanation: "GOP (Group of Pictures) é uma sequência de frames consecutivos em vídeo comprimido, contendo frames I, P e B.",
	},
	{
		ID:     11,
		Prompt: "Qual a diferença entre interlaced e progressive scan?",
		Options: []string{
			"Não há diferença",
			"Interlaced exibe linhas pares e ímpares alternadamente, progressive exibe todas de uma vez",
			"Progressive é mais antigo",
			"Interlaced tem maior resolução",
		},
		Correct:     1,
		Explanation: "Interlaced scan exibe linhas pares e ímpares em passes alternados, enquanto progressive scan exibe todos os pixels simultaneamente.",
	},
	{
		ID:     12,
		Prompt: "O que é \"chroma subsampling\" em vídeo digital?",
		Options: []string{
			"Redução de fps",
			"Compressão reduzindo informação de cor",
			"Aumento de resolução",
			"Tipo de codec",
		},
		Correct:     1,
		Explanation: "Chroma subsampling é uma técnica que reduz a informação de cor (crominância) mantendo a luminância, explorando a menor sensibilidade do olho humano à cor.",
	},
	{
		ID:     13,
		Prompt: "Qual container de vídeo é mais flexível e suporta múltiplos codecs?",
		Options: []string{
			"AVI",
			"MP4",
			"MKV",
			"MOV",
		},
		Correct:     2,
		Explanation: "MKV (Matroska) é conhecido por sua flexibilidade, suportando praticamente qualquer codec de áudio e vídeo, legendas múltiplas e metadados extensivos.",
	},
	{
		ID:     14,
		Prompt: "O que são \"I-frames\" em compressão de vídeo?",
		Options: []string{
			"Frames intermediários",
			"Frames de referência completos independentes",
			"Frames invertidos",
			"Frames de áudio",
		},
		Correct:     1,
		Explanation: "I-frames (Intra-frames) são quadros completos independentes que não dependem de outros frames, servindo como pontos de referência.",
	},
	{
		ID:     15,
		Prompt: "Qual é a taxa de quadros padrão do cinema digital?",
		Options: []string{
			"24 fps",
			"30 fps",
			"60 fps",
			"120 fps",
		},
		Correct:     0,
		Explanation: "O cinema digital tradicionalmente usa 24 fps (quadros por segundo), herança do cinema em película.",
	},
	{
		ID:     16,
		Prompt: "O que é \"HDR\" em vídeo?",
		Options: []string{
			"High Definition Resolution",
			"High Dynamic Range",
			"Hardware Data Recovery",
			"High Density Recording",
		},
		Correct:     1,
		Explanation: "HDR (High Dynamic Range) permite maior contraste entre as áreas mais claras e escuras da imagem, com cores mais vibrantes.",
	},
	{
		ID:     17,
		Prompt: "Qual formato de áudio é mais usado em transmissões broadcast?",
		Options: []string{
			"MP3",
			"WAV",
			"AAC",
			"FLAC",
		},
		Correct:     2,
		Explanation: "AAC (Advanced Audio Coding) é amplamente usado em broadcast por oferecer boa qualidade com taxas de bits moderadas.",
	},
	{
		ID:     18,
		Prompt: "O que é \"aspect ratio\" em vídeo?",
		Options: []string{
			"Taxa de compressão",
			"Proporção entre largura e altura da imagem",
			"Velocidade de reprodução",
			"Qualidade do áudio",
		},
		Correct:     1,
		Explanation: "Aspect ratio é a relação proporcional entre a largura e altura da imagem, como 16:9 ou 4:3.",
	},
	{
		ID:     19,
		Prompt: "Qual é a diferença entre VBR e CBR em codificação?",
		Options: []string{
			"VBR varia o bitrate, CBR mantém constante",
			"São o mesmo",
			"VBR é mais rápido",
			"CBR tem melhor qualidade sempre",
		},
		Correct:     0,
		Explanation: "VBR (Variable Bitrate) ajusta o bitrate conforme a complexidade do conteúdo, enquanto CBR (Constant Bitrate) mantém taxa fixa.",
	},
	{
		ID:     20,
		Prompt: "O que é \"latência\" em sistemas de streaming?",
		Options: []string{
			"Qualidade do vídeo",
			"Atraso entre captura e exibição",
			"Tamanho do arquivo",
			"Resolução da imagem",
		},
		Correct:     1,
		Explanation: "Latência é o tempo de atraso entre a captura do vídeo na origem e sua exibição no destino.",
	},
	{
		ID:     21,
		Prompt: "Qual tecnologia permite vídeo 360 graus?",
		Options: []string{
			"H.264 padrão",
			"Projeção equiretangular",
			"MP4 comum",
			"JPEG2000",
		},
		Correct:     1,
		Explanation: "A projeção equiretangular mapeia a esfera completa em um retângulo 2:1, permitindo vídeo 360 graus.",
	},
	{
		ID:     22,
		Prompt: "O que é \"keyframe interval\" na codificação de vídeo?",
		Options: []string{
			"Velocidade de reprodução",
			"Distância entre frames I consecutivos",
			"Tamanho do buffer",
			"Taxa de amostragem de áudio",
		},
		Correct:     1,
		Explanation: "Keyframe interval define a frequência de frames I (keyframes) no vídeo, afetando a capacidade de busca e qualidade.",
	},
}
